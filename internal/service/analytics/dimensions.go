package analytics

import (
	"strconv"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
)

// undefinedLabel is the grouping sentinel shared by every chart dimension.
const undefinedLabel = reference.Undefined

// Dimension names one aggregate axis a chart segment can be clicked on.
// Salary and salary gap are bucket dimensions: drill-down matches them by
// range, the rest by label.
type Dimension string

const (
	DimensionProject           Dimension = "project"
	DimensionBranch            Dimension = "branch"
	DimensionRole              Dimension = "role"
	DimensionCompany           Dimension = "company"
	DimensionSeniority         Dimension = "seniority"
	DimensionCriticality       Dimension = "criticality"
	DimensionAttritionRisk     Dimension = "attrition_risk"
	DimensionAttentionScore    Dimension = "attention_score"
	DimensionLeavingReason     Dimension = "leaving_reason"
	DimensionPerformance       Dimension = "performance"
	DimensionReplacementNeeded Dimension = "replacement_needed"
	DimensionSalary            Dimension = "salary"
	DimensionSalaryGap         Dimension = "salary_gap"
)

// DimensionLabel derives the chart label of an employee on a categorical
// dimension. Chart building and drill-down both call this one function, so
// a clicked label always matches the label the chart was built from.
func DimensionLabel(dim Dimension, e employee.Employee, refs *reference.Set) (string, bool) {
	switch dim {
	case DimensionProject:
		return refs.Name(reference.KindProject, e.ProjectID), true
	case DimensionBranch:
		return refs.Name(reference.KindBranch, e.BranchID), true
	case DimensionRole:
		return refs.Name(reference.KindRole, e.RoleID), true
	case DimensionCompany:
		return refs.Name(reference.KindCompany, e.CompanyID), true
	case DimensionSeniority:
		return refs.Name(reference.KindSeniority, e.SeniorityID), true
	case DimensionCriticality:
		return scoreLabel(e.UnitCriticality), true
	case DimensionAttritionRisk:
		return scoreLabel(e.AttritionRisk), true
	case DimensionAttentionScore:
		return strconv.Itoa(AttentionScore(e)), true
	case DimensionLeavingReason:
		return refs.Name(reference.KindLeavingReason, e.LeavingReasonID), true
	case DimensionPerformance:
		return refs.Name(reference.KindPerformanceLevel, e.PerformanceLevelID), true
	case DimensionReplacementNeeded:
		if e.ReplacementNeeded == "" {
			return undefinedLabel, true
		}
		return string(e.ReplacementNeeded), true
	default:
		return "", false
	}
}

// BucketValue extracts the raw numeric for a bucket dimension; false either
// when the dimension is not bucket-based or when the employee lacks the
// inputs (such records never appear in the chart and never drill down).
func BucketValue(dim Dimension, e employee.Employee) (float64, bool) {
	switch dim {
	case DimensionSalary:
		return EstimatedSalary(e)
	case DimensionSalaryGap:
		return SalaryGap(e)
	default:
		return 0, false
	}
}

// BucketRanges returns the fixed band table of a bucket dimension.
func BucketRanges(dim Dimension) ([]Range, bool) {
	switch dim {
	case DimensionSalary:
		return SalaryRanges(), true
	case DimensionSalaryGap:
		return SalaryGapRanges(), true
	default:
		return nil, false
	}
}

// scoreLabel renders a 0-5 rating as its chart label, nil as the sentinel.
func scoreLabel(score *int) string {
	if score == nil {
		return undefinedLabel
	}
	return strconv.Itoa(*score)
}
