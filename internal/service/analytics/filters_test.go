package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

func filterTestSet() []employee.Employee {
	a := testEmployee("1", "Avi Cohen")
	a.ProjectID = strPtr("p1")
	a.UnitCriticality = intPtr(3)
	a.IsOurSourcing = true
	a.City = strPtr("Haifa")
	a.StartDate = date(2022, time.June, 1)

	b := testEmployee("2", "Dana Levi")
	b.ProjectID = strPtr("p2")
	b.AttritionRisk = intPtr(5)
	b.StartDate = date(2024, time.January, 10)

	c := testEmployee("3", "Noa Mizrahi")
	// no project id at all
	c.StartDate = date(2023, time.March, 15)

	return []employee.Employee{a, b, c}
}

func TestFilterEmptyCriteriaPassesEverything(t *testing.T) {
	all := filterTestSet()
	got := Filter(all, analytics.Criteria{})
	assert.Len(t, got, len(all))
}

func TestFilterIdempotent(t *testing.T) {
	all := filterTestSet()
	c := analytics.Criteria{ProjectIDs: []string{"p1", "p2"}, OurSourcing: []bool{true}}

	once := Filter(all, c)
	twice := Filter(once, c)
	assert.Equal(t, once, twice)
}

func TestFilterByProject(t *testing.T) {
	got := Filter(filterTestSet(), analytics.Criteria{ProjectIDs: []string{"p1"}})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterNilForeignKeyNeverMatchesSelection(t *testing.T) {
	got := Filter(filterTestSet(), analytics.Criteria{ProjectIDs: []string{"p1", "p2"}})
	for _, e := range got {
		assert.NotEqual(t, "3", e.ID, "record without a project must not match a project selection")
	}
}

func TestFilterCriteriaCombineWithAnd(t *testing.T) {
	// p1 alone matches employee 1; adding a risk selection employee 1
	// fails must empty the result.
	got := Filter(filterTestSet(), analytics.Criteria{
		ProjectIDs:     []string{"p1"},
		AttritionRisks: []string{"5"},
	})
	assert.Empty(t, got)
}

func TestFilterByScoreLabelIncludingSentinel(t *testing.T) {
	got := Filter(filterTestSet(), analytics.Criteria{Criticalities: []string{"undefined"}})
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Nil(t, e.UnitCriticality)
	}
}

func TestFilterSearch(t *testing.T) {
	cases := []struct {
		search string
		ids    []string
	}{
		{"dana", []string{"2"}},
		{"haifa", []string{"1"}}, // city column
		{"1002", []string{"2"}},  // id number column
		{"nobody", []string{}},
	}

	for _, c := range cases {
		got := Filter(filterTestSet(), analytics.Criteria{Search: c.search})
		ids := make([]string, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		assert.ElementsMatch(t, c.ids, ids, "search %q", c.search)
	}
}

func TestFilterStartDateRangeInclusive(t *testing.T) {
	got := Filter(filterTestSet(), analytics.Criteria{
		StartDateFrom: "2022-06-01",
		StartDateTo:   "2023-03-15",
	})
	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"1", "3"}, ids, "both bounds are inclusive")
}
