package analytics

import (
	"github.com/talentwatch/retention-backend-go/internal/pkg/validator"
)

// Criteria is the full set of independent dashboard filters, passed as an
// immutable value into every engine call. An empty selection set means "no
// constraint", never "match nothing"; every predicate ANDs with the rest.
type Criteria struct {
	ProjectIDs   []string `json:"project_ids,omitempty"`
	BranchIDs    []string `json:"branch_ids,omitempty"`
	RoleIDs      []string `json:"role_ids,omitempty"`
	CompanyIDs   []string `json:"company_ids,omitempty"`
	SeniorityIDs []string `json:"seniority_ids,omitempty"`

	// Score selections use chart labels: "0".."5" or "undefined".
	Criticalities  []string `json:"criticalities,omitempty"`
	AttritionRisks []string `json:"attrition_risks,omitempty"`

	OurSourcing   []bool `json:"our_sourcing,omitempty"`
	RevolvingDoor []bool `json:"revolving_door,omitempty"`

	// Search is a case-insensitive substring match over full name, id number
	// and city.
	Search string `json:"search,omitempty"`

	// Inclusive start-date range, ISO "YYYY-MM-DD". Compared lexicographically
	// on purpose: all stored dates share the format, and string comparison
	// sidesteps timezone parsing.
	StartDateFrom string `json:"start_date_from,omitempty"`
	StartDateTo   string `json:"start_date_to,omitempty"`
}

// Slice is one chart segment: a resolved label and its count or sum.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bucket is one segment of a numeric distribution. Min/Max carry the
// half-open [min, max) range so drill-down can re-derive membership exactly;
// a nil bound means unbounded on that side. IsNegative is presentation
// metadata for the salary-gap chart.
type Bucket struct {
	Label      string   `json:"label"`
	Count      int      `json:"count"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	IsNegative bool     `json:"is_negative,omitempty"`
}

// TrendPoint is one month of a single-series trend.
type TrendPoint struct {
	Month string `json:"month"` // "YYYY-MM"
	Count int    `json:"count"`
}

// TrendSeries is one named line of a multi-series trend.
type TrendSeries struct {
	Name   string `json:"name"`
	Counts []int  `json:"counts"` // aligned with the Months axis
}

// SeniorityTrendResponse is the cumulative-as-of headcount reconstruction,
// subdivided by the employee's current seniority. Seniority history is not
// tracked, so a promotion today colors every past month of the series; this
// approximation is deliberate.
type SeniorityTrendResponse struct {
	Months []string      `json:"months"` // "YYYY-MM", ascending
	Series []TrendSeries `json:"series"`
}

type TrendsResponse struct {
	Hiring    []TrendPoint           `json:"hiring"`
	Seniority SeniorityTrendResponse `json:"seniority"`
}

// DashboardResponse is the chart-ready view model for the analytics screens.
// Aggregates gated behind a role the viewer lacks are nil: they were never
// computed, not merely hidden.
type DashboardResponse struct {
	TotalActive int `json:"total_active"`
	TotalLeft   int `json:"total_left"`

	HeadcountByProject   []Slice `json:"headcount_by_project"`
	HeadcountByBranch    []Slice `json:"headcount_by_branch"`
	HeadcountBySeniority []Slice `json:"headcount_by_seniority"`
	HeadcountByCompany   []Slice `json:"headcount_by_company"`

	// Fixed 7-label domain ("0".."5" + "undefined"), zero counts kept.
	CriticalityDistribution   []Slice `json:"criticality_distribution"`
	AttritionRiskDistribution []Slice `json:"attrition_risk_distribution"`

	AttentionScoreDistribution []Slice `json:"attention_score_distribution"`

	// Manager only.
	CostByProject      []Slice  `json:"cost_by_project,omitempty"`
	SalaryDistribution []Bucket `json:"salary_distribution,omitempty"`

	// Super admin only.
	SalaryGapDistribution []Bucket `json:"salary_gap_distribution,omitempty"`

	// Computed over the left subset, zero counts dropped.
	LeavingReasons []Slice `json:"leaving_reasons"`

	Trends TrendsResponse `json:"trends"`
}

// EmployeeRow is a drill-down table row, enriched with every resolved
// reference name the table displays. Unresolved ids show "-".
type EmployeeRow struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	IDNumber string `json:"id_number"`
	City     string `json:"city"`

	Project          string `json:"project"`
	Branch           string `json:"branch"`
	Role             string `json:"role"`
	Company          string `json:"company"`
	Seniority        string `json:"seniority"`
	PerformanceLevel string `json:"performance_level"`
	LeavingReason    string `json:"leaving_reason,omitempty"`

	StartDate       string   `json:"start_date"`
	UnitCriticality *int     `json:"unit_criticality,omitempty"`
	AttritionRisk   *int     `json:"attrition_risk,omitempty"`
	AttentionScore  int      `json:"attention_score"`
	EstimatedSalary *float64 `json:"estimated_salary,omitempty"`
	SalaryGap       *float64 `json:"salary_gap,omitempty"`
}

// DrillDownRequest identifies a clicked chart segment. Categorical dimensions
// match by Label; bucket dimensions (salary, salary_gap) match by the
// segment's Min/Max range instead, since two raw values can share a rounded
// label.
type DrillDownRequest struct {
	Dimension string   `json:"dimension"`
	Label     string   `json:"label,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Criteria  Criteria `json:"criteria"`
}

func (r *DrillDownRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Dimension) {
		errs = append(errs, validator.ValidationError{
			Field:   "dimension",
			Message: "dimension is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
