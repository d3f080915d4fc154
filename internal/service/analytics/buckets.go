package analytics

import (
	"math"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
)

// Range is one half-open [Min, Max) band of a numeric distribution. The last
// band of a table is open-ended (Max = +Inf). A value exactly equal to Max
// belongs to the next band, never this one.
type Range struct {
	Min        float64
	Max        float64
	Label      string
	IsNegative bool
}

// Contains applies the half-open membership rule. Drill-down uses the same
// function, so chart membership and drill-down membership cannot diverge.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Bucketize counts values into ordered ranges. Empty buckets are dropped
// from the output; the Min/Max pair rides along so a click can re-derive
// exact membership instead of trusting the rounded label.
func Bucketize(values []float64, ranges []Range) []analytics.Bucket {
	counts := make([]int, len(ranges))
	for _, v := range values {
		for i, r := range ranges {
			if r.Contains(v) {
				counts[i]++
				break
			}
		}
	}

	buckets := make([]analytics.Bucket, 0, len(ranges))
	for i, r := range ranges {
		if counts[i] == 0 {
			continue
		}
		buckets = append(buckets, analytics.Bucket{
			Label:      r.Label,
			Count:      counts[i],
			Min:        finiteBound(r.Min),
			Max:        finiteBound(r.Max),
			IsNegative: r.IsNegative,
		})
	}
	return buckets
}

// SalaryRanges are the fixed shekel bands of the estimated-salary chart.
func SalaryRanges() []Range {
	return []Range{
		{Min: 0, Max: 10000, Label: "up to 10K"},
		{Min: 10000, Max: 15000, Label: "10K-15K"},
		{Min: 15000, Max: 20000, Label: "15K-20K"},
		{Min: 20000, Max: 25000, Label: "20K-25K"},
		{Min: 25000, Max: 30000, Label: "25K-30K"},
		{Min: 30000, Max: math.Inf(1), Label: "30K+"},
	}
}

// SalaryGapRanges are the fixed signed bands of the salary-gap chart. Gap is
// market minus estimated, so negative bands mean the market pays less; the
// IsNegative tag drives the red/green split downstream.
func SalaryGapRanges() []Range {
	return []Range{
		{Min: math.Inf(-1), Max: -10000, Label: "market lower, over 10K", IsNegative: true},
		{Min: -10000, Max: -5000, Label: "market lower, 5K-10K", IsNegative: true},
		{Min: -5000, Max: -2000, Label: "market lower, 2K-5K", IsNegative: true},
		{Min: -2000, Max: 0, Label: "market lower, up to 2K", IsNegative: true},
		{Min: 0, Max: 2000, Label: "market higher, up to 2K"},
		{Min: 2000, Max: 5000, Label: "market higher, 2K-5K"},
		{Min: 5000, Max: 10000, Label: "market higher, 5K-10K"},
		{Min: 10000, Max: math.Inf(1), Label: "market higher, over 10K"},
	}
}

// finiteBound maps an infinite bound to nil so buckets survive JSON encoding.
func finiteBound(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// RangeFor finds the band of a table matching a drill-down's min/max pair.
func RangeFor(ranges []Range, min, max float64) (Range, bool) {
	for _, r := range ranges {
		if r.Min == min && r.Max == max {
			return r, true
		}
	}
	return Range{}, false
}
