package analytics

import (
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

// Statutory employer-overhead multipliers used to deflate all-in cost back to
// an approximate gross salary. The decomposition is fixed; do not fold the
// divisors into one constant, call sites compare against the audited chain.
const (
	employerTaxFactor = 1.4
	overheadFactor    = 1.1
	vatFactor         = 1.18
)

// AttentionScore is the retention-focus metric: unit criticality times
// attrition risk, range 0-25. A nil score counts as 0, so an employee with
// unknown risk contributes 0 rather than "unknown". Callers rely on this.
func AttentionScore(e employee.Employee) int {
	criticality := 0
	if e.UnitCriticality != nil {
		criticality = *e.UnitCriticality
	}
	risk := 0
	if e.AttritionRisk != nil {
		risk = *e.AttritionRisk
	}
	return criticality * risk
}

// EstimatedSalary deflates monthly cost by the statutory multipliers.
// Returns false when cost is absent; the record is then excluded from
// salary-based aggregates entirely.
func EstimatedSalary(e employee.Employee) (float64, bool) {
	if e.Cost == nil {
		return 0, false
	}
	cost := e.Cost.InexactFloat64()
	return cost / employerTaxFactor / overheadFactor / vatFactor, true
}

// SalaryGap is real market salary minus estimated salary; positive means the
// market pays more. Defined only when both operands are present: an absent
// input excludes the record from gap aggregates instead of counting as 0,
// which would corrupt the sums.
func SalaryGap(e employee.Employee) (float64, bool) {
	if e.RealMarketSalary == nil {
		return 0, false
	}
	estimated, ok := EstimatedSalary(e)
	if !ok {
		return 0, false
	}
	return e.RealMarketSalary.InexactFloat64() - estimated, true
}
