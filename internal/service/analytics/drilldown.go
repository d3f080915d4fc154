package analytics

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
)

// tableSentinel is what drill-down tables show for an unresolved reference.
const tableSentinel = "-"

// DrillDownByLabel keeps the employees whose derived label on a categorical
// dimension equals the clicked one. The label comes from the same
// DimensionLabel function the chart was built with, so equality is exact by
// construction. An empty result is a normal "no records in this group"
// outcome, not an error.
func DrillDownByLabel(employees []employee.Employee, dim Dimension, label string, refs *reference.Set, v Viewer) ([]analytics.EmployeeRow, error) {
	// Validate the dimension up front; an empty pool must still reject an
	// unknown one.
	if _, ok := DimensionLabel(dim, employee.Employee{}, refs); !ok {
		return nil, analytics.ErrUnknownDimension
	}
	var members []employee.Employee
	for _, e := range employees {
		derived, _ := DimensionLabel(dim, e, refs)
		if derived == label {
			members = append(members, e)
		}
	}
	return enrichAndSort(members, refs, v), nil
}

// DrillDownByRange keeps the employees whose bucket value falls inside the
// clicked band, using the same half-open rule the chart used. Matching by
// range rather than label matters: two raw values can round to one label.
func DrillDownByRange(employees []employee.Employee, dim Dimension, rng Range, refs *reference.Set, v Viewer) ([]analytics.EmployeeRow, error) {
	if _, ok := BucketRanges(dim); !ok {
		return nil, analytics.ErrUnknownDimension
	}
	var members []employee.Employee
	for _, e := range employees {
		val, ok := BucketValue(dim, e)
		if !ok {
			continue
		}
		if rng.Contains(val) {
			members = append(members, e)
		}
	}
	return enrichAndSort(members, refs, v), nil
}

// enrichAndSort resolves every reference name a table column needs and sorts
// rows by full name with the Hebrew collator. Salary columns follow the same
// role gating as the salary charts: computed for managers (gap for super
// admins), skipped entirely for everyone else.
func enrichAndSort(members []employee.Employee, refs *reference.Set, v Viewer) []analytics.EmployeeRow {
	rows := make([]analytics.EmployeeRow, 0, len(members))
	for _, e := range members {
		row := analytics.EmployeeRow{
			ID:               e.ID,
			FullName:         e.FullName,
			IDNumber:         e.IDNumber,
			City:             tableSentinel,
			Project:          refs.NameOr(reference.KindProject, e.ProjectID, tableSentinel),
			Branch:           refs.NameOr(reference.KindBranch, e.BranchID, tableSentinel),
			Role:             refs.NameOr(reference.KindRole, e.RoleID, tableSentinel),
			Company:          refs.NameOr(reference.KindCompany, e.CompanyID, tableSentinel),
			Seniority:        refs.NameOr(reference.KindSeniority, e.SeniorityID, tableSentinel),
			PerformanceLevel: refs.NameOr(reference.KindPerformanceLevel, e.PerformanceLevelID, tableSentinel),
			StartDate:        e.StartDate.Format("2006-01-02"),
			UnitCriticality:  e.UnitCriticality,
			AttritionRisk:    e.AttritionRisk,
			AttentionScore:   AttentionScore(e),
		}
		if e.City != nil {
			row.City = *e.City
		}
		if e.IsLeft {
			row.LeavingReason = refs.NameOr(reference.KindLeavingReason, e.LeavingReasonID, tableSentinel)
		}
		if v.IsManager {
			if est, ok := EstimatedSalary(e); ok {
				row.EstimatedSalary = &est
			}
		}
		if v.IsSuperAdmin {
			if gap, ok := SalaryGap(e); ok {
				row.SalaryGap = &gap
			}
		}
		rows = append(rows, row)
	}

	col := collate.New(language.Hebrew)
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].FullName, rows[j].FullName) < 0
	})
	return rows
}
