package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

func TestGroupCountFixedDomainAlwaysComplete(t *testing.T) {
	byCriticality := func(e employee.Employee) string {
		return scoreLabel(e.UnitCriticality)
	}

	// Empty input still yields the full seven-entry domain, all zeros.
	got := GroupCount(nil, byCriticality, GroupOptions{FixedDomain: ScoreDomain()})
	require.Len(t, got, 7)
	for _, s := range got {
		assert.Zero(t, s.Value)
	}

	a := testEmployee("1", "A")
	a.UnitCriticality = intPtr(3)
	b := testEmployee("2", "B")

	got = GroupCount([]employee.Employee{a, b}, byCriticality, GroupOptions{FixedDomain: ScoreDomain()})
	require.Len(t, got, 7)

	byLabel := make(map[string]float64)
	for _, s := range got {
		byLabel[s.Label] = s.Value
	}
	assert.Equal(t, 1.0, byLabel["3"])
	assert.Equal(t, 1.0, byLabel["undefined"])
	assert.Equal(t, 0.0, byLabel["5"], "empty levels stay in the output")
}

func TestGroupCountDomainOrderStable(t *testing.T) {
	got := GroupCount(nil, func(employee.Employee) string { return "" }, GroupOptions{FixedDomain: ScoreDomain()})
	labels := make([]string, 0, len(got))
	for _, s := range got {
		labels = append(labels, s.Label)
	}
	// Strays aside, the fixed domain dictates order; sentinel last.
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "undefined"}, labels)
}

func TestGroupCountDropZeros(t *testing.T) {
	a := testEmployee("1", "A")
	a.ProjectID = strPtr("p1")

	got := GroupCount([]employee.Employee{a}, func(e employee.Employee) string {
		l, _ := DimensionLabel(DimensionProject, e, testRefs())
		return l
	}, GroupOptions{DropZeros: true})

	require.Len(t, got, 1)
	assert.Equal(t, "Iron Dome", got[0].Label)
}

func TestGroupCountSortDesc(t *testing.T) {
	employees := []employee.Employee{}
	for i, project := range []string{"p1", "p2", "p2"} {
		e := testEmployee(string(rune('1'+i)), "E")
		e.ProjectID = strPtr(project)
		employees = append(employees, e)
	}

	got := GroupCount(employees, func(e employee.Employee) string {
		l, _ := DimensionLabel(DimensionProject, e, testRefs())
		return l
	}, GroupOptions{DropZeros: true, SortDesc: true})

	require.Len(t, got, 2)
	assert.Equal(t, "Atlas", got[0].Label)
	assert.Equal(t, 2.0, got[0].Value)
}

func TestGroupSumExcludesUndefinedValues(t *testing.T) {
	a := testEmployee("1", "A")
	a.ProjectID = strPtr("p1")
	a.Cost = decPtr(20000)
	b := testEmployee("2", "B")
	b.ProjectID = strPtr("p1")
	// no cost: EstimatedSalary-style valueFn excludes it from the sum

	got := GroupSum([]employee.Employee{a, b}, func(e employee.Employee) string {
		l, _ := DimensionLabel(DimensionProject, e, testRefs())
		return l
	}, func(e employee.Employee) (float64, bool) {
		if e.Cost == nil {
			return 0, false
		}
		return e.Cost.InexactFloat64(), true
	}, GroupOptions{})

	require.Len(t, got, 1)
	assert.Equal(t, 20000.0, got[0].Value)
}

func TestAttentionScoreDistributionScenario(t *testing.T) {
	// criticality 3 x risk 4, criticality 0 x risk 5, both nil.
	a := testEmployee("1", "A")
	a.UnitCriticality = intPtr(3)
	a.AttritionRisk = intPtr(4)
	b := testEmployee("2", "B")
	b.UnitCriticality = intPtr(0)
	b.AttritionRisk = intPtr(5)
	c := testEmployee("3", "C")

	got := attentionScoreDistribution([]employee.Employee{a, b, c})

	byLabel := make(map[string]float64)
	for _, s := range got {
		byLabel[s.Label] = s.Value
	}
	assert.Equal(t, map[string]float64{"0": 2, "12": 1}, byLabel)

	// Numeric ordering, not lexicographic: 0 before 12.
	require.Len(t, got, 2)
	assert.Equal(t, "0", got[0].Label)
	assert.Equal(t, "12", got[1].Label)
}
