package analytics

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

// GroupOptions tune one aggregate call site. Whether zero-value groups are
// kept or dropped is a per-chart decision: the score distributions want the
// complete 0-5 picture, the cost and leaving-reason charts hide zeros.
type GroupOptions struct {
	// FixedDomain forces every listed label into the output in this order,
	// zero counts included, regardless of input.
	FixedDomain []string

	// DropZeros removes zero-value groups after reduction.
	DropZeros bool

	// SortDesc orders by value descending; SortAlpha by label using the
	// Hebrew collator. Without either, insertion order of first occurrence.
	SortDesc  bool
	SortAlpha bool
}

// GroupCount groups employees by a label function and emits group sizes.
func GroupCount(employees []employee.Employee, labelFn func(employee.Employee) string, opts GroupOptions) []analytics.Slice {
	return groupReduce(employees, labelFn, func(employee.Employee) (float64, bool) {
		return 1, true
	}, opts)
}

// GroupSum groups employees by a label function and sums a numeric field.
// valueFn returning false excludes a record from its group's sum (it still
// does not create the group); nulls that should count as zero return (0, true).
func GroupSum(employees []employee.Employee, labelFn func(employee.Employee) string, valueFn func(employee.Employee) (float64, bool), opts GroupOptions) []analytics.Slice {
	return groupReduce(employees, labelFn, valueFn, opts)
}

func groupReduce(employees []employee.Employee, labelFn func(employee.Employee) string, valueFn func(employee.Employee) (float64, bool), opts GroupOptions) []analytics.Slice {
	totals := make(map[string]float64)
	var order []string

	for _, label := range opts.FixedDomain {
		totals[label] = 0
		order = append(order, label)
	}

	for _, e := range employees {
		label := labelFn(e)
		if _, seen := totals[label]; !seen {
			// Outside a fixed domain every label is admitted; inside one,
			// stray labels are still counted so no record silently vanishes.
			order = append(order, label)
			totals[label] = 0
		}
		if v, ok := valueFn(e); ok {
			totals[label] += v
		}
	}

	slices := make([]analytics.Slice, 0, len(order))
	for _, label := range order {
		value := totals[label]
		if opts.DropZeros && value == 0 {
			continue
		}
		slices = append(slices, analytics.Slice{Label: label, Value: value})
	}

	switch {
	case opts.SortDesc:
		sort.SliceStable(slices, func(i, j int) bool {
			return slices[i].Value > slices[j].Value
		})
	case opts.SortAlpha:
		col := collate.New(language.Hebrew)
		sort.SliceStable(slices, func(i, j int) bool {
			return col.CompareString(slices[i].Label, slices[j].Label) < 0
		})
	}

	return slices
}

// ScoreDomain is the canonical fixed domain for criticality and attrition
// risk charts: six levels plus the sentinel, sentinel always last.
func ScoreDomain() []string {
	return []string{"0", "1", "2", "3", "4", "5", undefinedLabel}
}
