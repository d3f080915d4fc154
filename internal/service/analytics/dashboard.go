package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

// ComputeDashboard derives every chart series the viewer's role permits from
// one snapshot and one criteria value. It is pure: same snapshot, criteria
// and clock in, same view model out. The UI recomputes it wholesale on every
// filter change instead of patching the previous result.
func ComputeDashboard(snap *Snapshot, criteria analytics.Criteria, v Viewer, now time.Time) *analytics.DashboardResponse {
	// Signing in gates the whole dashboard the same way manager and super
	// admin gate their sections: nothing is computed for a signed-out
	// viewer, not merely hidden.
	if !v.SignedIn {
		return &analytics.DashboardResponse{}
	}

	active := Filter(snap.Active(), criteria)
	left := Filter(snap.Left(), criteria)
	refs := snap.Refs

	label := func(dim Dimension) func(employee.Employee) string {
		return func(e employee.Employee) string {
			l, _ := DimensionLabel(dim, e, refs)
			return l
		}
	}

	resp := &analytics.DashboardResponse{
		TotalActive: len(active),
		TotalLeft:   len(left),

		HeadcountByProject:   GroupCount(active, label(DimensionProject), GroupOptions{DropZeros: true, SortDesc: true}),
		HeadcountByBranch:    GroupCount(active, label(DimensionBranch), GroupOptions{DropZeros: true, SortDesc: true}),
		HeadcountBySeniority: GroupCount(active, label(DimensionSeniority), GroupOptions{DropZeros: true, SortAlpha: true}),
		HeadcountByCompany:   GroupCount(active, label(DimensionCompany), GroupOptions{DropZeros: true, SortDesc: true}),

		// The score distributions keep zeros: the chart must show all six
		// levels plus the sentinel even on an empty input.
		CriticalityDistribution:   GroupCount(active, label(DimensionCriticality), GroupOptions{FixedDomain: ScoreDomain()}),
		AttritionRiskDistribution: GroupCount(active, label(DimensionAttritionRisk), GroupOptions{FixedDomain: ScoreDomain()}),

		AttentionScoreDistribution: attentionScoreDistribution(active),

		LeavingReasons: GroupCount(left, label(DimensionLeavingReason), GroupOptions{DropZeros: true, SortDesc: true}),

		Trends: analytics.TrendsResponse{
			Hiring:    HiringTrend(active, now),
			Seniority: SeniorityTrend(active, refs, now),
		},
	}

	// Cost aggregates exist only for managers; the branch skips the work
	// entirely rather than masking the result.
	if v.IsManager {
		resp.CostByProject = GroupSum(active, label(DimensionProject), costOrZero, GroupOptions{DropZeros: true, SortDesc: true})
		resp.SalaryDistribution = Bucketize(bucketValues(active, DimensionSalary), SalaryRanges())
	}
	if v.IsSuperAdmin {
		resp.SalaryGapDistribution = Bucketize(bucketValues(active, DimensionSalaryGap), SalaryGapRanges())
	}

	return resp
}

// attentionScoreDistribution groups by the derived score with zero-filtering
// disabled, sorted by numeric score so the 0..25 axis reads naturally.
func attentionScoreDistribution(active []employee.Employee) []analytics.Slice {
	slices := GroupCount(active, func(e employee.Employee) string {
		return strconv.Itoa(AttentionScore(e))
	}, GroupOptions{})

	sort.SliceStable(slices, func(i, j int) bool {
		a, _ := strconv.Atoi(slices[i].Label)
		b, _ := strconv.Atoi(slices[j].Label)
		return a < b
	})
	return slices
}

// costOrZero feeds the cost sums: a missing cost contributes zero to its
// group instead of excluding the record.
func costOrZero(e employee.Employee) (float64, bool) {
	if e.Cost == nil {
		return 0, true
	}
	return e.Cost.InexactFloat64(), true
}

// bucketValues collects the defined values of a bucket dimension; records
// lacking the inputs are excluded, not zeroed.
func bucketValues(employees []employee.Employee, dim Dimension) []float64 {
	var values []float64
	for _, e := range employees {
		if v, ok := BucketValue(dim, e); ok {
			values = append(values, v)
		}
	}
	return values
}
