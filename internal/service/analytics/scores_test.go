package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

func TestAttentionScore(t *testing.T) {
	cases := []struct {
		name        string
		criticality *int
		risk        *int
		want        int
	}{
		{"both present", intPtr(3), intPtr(4), 12},
		{"zero criticality", intPtr(0), intPtr(5), 0},
		{"nil criticality", nil, intPtr(5), 0},
		{"nil risk", intPtr(5), nil, 0},
		{"both nil", nil, nil, 0},
		{"maximum", intPtr(5), intPtr(5), 25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := employee.Employee{UnitCriticality: c.criticality, AttritionRisk: c.risk}
			assert.Equal(t, c.want, AttentionScore(e))
		})
	}
}

func TestAttentionScoreBounds(t *testing.T) {
	// Every combination of valid ratings stays inside [0, 25].
	for crit := employee.ScoreMin; crit <= employee.ScoreMax; crit++ {
		for risk := employee.ScoreMin; risk <= employee.ScoreMax; risk++ {
			e := employee.Employee{UnitCriticality: intPtr(crit), AttritionRisk: intPtr(risk)}
			score := AttentionScore(e)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 25)
		}
	}
}

func TestEstimatedSalary(t *testing.T) {
	e := employee.Employee{Cost: decPtr(14000)}

	got, ok := EstimatedSalary(e)
	require.True(t, ok)
	assert.InDelta(t, 14000.0/1.4/1.1/1.18, got, 0.01)
}

func TestEstimatedSalaryMissingCost(t *testing.T) {
	_, ok := EstimatedSalary(employee.Employee{})
	assert.False(t, ok)
}

func TestSalaryGap(t *testing.T) {
	e := employee.Employee{
		Cost:             decPtr(14000),
		RealMarketSalary: decPtr(9000),
	}

	gap, ok := SalaryGap(e)
	require.True(t, ok)

	estimated, _ := EstimatedSalary(e)
	assert.InDelta(t, 9000-estimated, gap, 0.01)
	assert.Positive(t, gap, "market pays more than the estimate here")

	// The gap lands in the first positive band of the gap chart.
	rng, found := RangeFor(SalaryGapRanges(), 0, 2000)
	require.True(t, found)
	assert.True(t, rng.Contains(gap))
	assert.Equal(t, "market higher, up to 2K", rng.Label)
}

func TestSalaryGapRequiresBothOperands(t *testing.T) {
	_, ok := SalaryGap(employee.Employee{Cost: decPtr(14000)})
	assert.False(t, ok, "missing market salary excludes the record")

	_, ok = SalaryGap(employee.Employee{RealMarketSalary: decPtr(9000)})
	assert.False(t, ok, "missing cost excludes the record")
}
