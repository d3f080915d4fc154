package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

func TestDrillDownByLabelMatchesChartGrouping(t *testing.T) {
	refs := testRefs()

	a := testEmployee("1", "Avi Cohen")
	a.ProjectID = strPtr("p1")
	b := testEmployee("2", "Dana Levi")
	b.ProjectID = strPtr("p1")
	c := testEmployee("3", "Noa Mizrahi")
	c.ProjectID = strPtr("p2")
	employees := []employee.Employee{a, b, c}

	chart := GroupCount(employees, func(e employee.Employee) string {
		l, _ := DimensionLabel(DimensionProject, e, refs)
		return l
	}, GroupOptions{DropZeros: true})

	// Every chart segment drills down to exactly its own count.
	for _, slice := range chart {
		rows, err := DrillDownByLabel(employees, DimensionProject, slice.Label, refs, Viewer{SignedIn: true})
		require.NoError(t, err)
		assert.Len(t, rows, int(slice.Value), "segment %q", slice.Label)
	}
}

func TestDrillDownSentinelSegment(t *testing.T) {
	refs := testRefs()

	a := testEmployee("1", "Avi Cohen")
	a.ProjectID = strPtr("p1")
	b := testEmployee("2", "Dana Levi") // no project

	rows, err := DrillDownByLabel([]employee.Employee{a, b}, DimensionProject, "undefined", refs, Viewer{SignedIn: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].ID)
	assert.Equal(t, "-", rows[0].Project, "tables show a dash, not the grouping sentinel")
}

func TestDrillDownEmptySegmentIsNotAnError(t *testing.T) {
	rows, err := DrillDownByLabel(nil, DimensionProject, "Iron Dome", testRefs(), Viewer{SignedIn: true})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDrillDownUnknownDimension(t *testing.T) {
	// An unknown dimension is rejected even over an empty pool.
	_, err := DrillDownByLabel(nil, Dimension("bogus"), "x", testRefs(), Viewer{SignedIn: true})
	assert.ErrorIs(t, err, analytics.ErrUnknownDimension)

	e := testEmployee("1", "Avi Cohen")
	_, err = DrillDownByLabel([]employee.Employee{e}, Dimension("bogus"), "x", testRefs(), Viewer{SignedIn: true})
	assert.ErrorIs(t, err, analytics.ErrUnknownDimension)

	_, err = DrillDownByRange(nil, Dimension("project"), Range{}, testRefs(), Viewer{SignedIn: true})
	assert.ErrorIs(t, err, analytics.ErrUnknownDimension, "project is not a bucket dimension")
}

func TestDrillDownByRangeHalfOpen(t *testing.T) {
	refs := testRefs()

	// Estimated salaries: 14000/1.4/1.1/1.18 ~ 7704, 20000 -> ~11006.
	low := testEmployee("1", "Avi Cohen")
	low.Cost = decPtr(14000)
	high := testEmployee("2", "Dana Levi")
	high.Cost = decPtr(20000)
	noCost := testEmployee("3", "Noa Mizrahi")

	rng, ok := RangeFor(SalaryRanges(), 0, 10000)
	require.True(t, ok)

	manager := Viewer{SignedIn: true, IsManager: true}
	rows, err := DrillDownByRange([]employee.Employee{low, high, noCost}, DimensionSalary, rng, refs, manager)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].ID)
	require.NotNil(t, rows[0].EstimatedSalary)
	assert.Less(t, *rows[0].EstimatedSalary, 10000.0)
}

func TestDrillDownRowsSortedByName(t *testing.T) {
	refs := testRefs()

	b := testEmployee("2", "Dana Levi")
	b.ProjectID = strPtr("p1")
	a := testEmployee("1", "Avi Cohen")
	a.ProjectID = strPtr("p1")

	rows, err := DrillDownByLabel([]employee.Employee{b, a}, DimensionProject, "Iron Dome", refs, Viewer{SignedIn: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Avi Cohen", rows[0].FullName)
	assert.Equal(t, "Dana Levi", rows[1].FullName)
}

func TestDrillDownRowEnrichment(t *testing.T) {
	refs := testRefs()

	e := testEmployee("1", "Avi Cohen")
	e.ProjectID = strPtr("p1")
	e.BranchID = strPtr("b1")
	e.SeniorityID = strPtr("s2")
	e.City = strPtr("Haifa")
	e.UnitCriticality = intPtr(4)
	e.AttritionRisk = intPtr(3)
	e.Cost = decPtr(14000)
	e.RealMarketSalary = decPtr(9000)

	admin := Viewer{SignedIn: true, IsManager: true, IsSuperAdmin: true}
	rows, err := DrillDownByLabel([]employee.Employee{e}, DimensionProject, "Iron Dome", refs, admin)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Iron Dome", row.Project)
	assert.Equal(t, "Tel Aviv", row.Branch)
	assert.Equal(t, "Senior", row.Seniority)
	assert.Equal(t, "Haifa", row.City)
	assert.Equal(t, "-", row.Company, "unset reference renders as a dash")
	assert.Equal(t, 12, row.AttentionScore)
	assert.Equal(t, "2023-03-15", row.StartDate)
	require.NotNil(t, row.EstimatedSalary)
	require.NotNil(t, row.SalaryGap)
	assert.Empty(t, row.LeavingReason, "active employees carry no leaving reason")
}

func TestDrillDownSalaryColumnsFollowRoleGating(t *testing.T) {
	refs := testRefs()

	e := testEmployee("1", "Avi Cohen")
	e.ProjectID = strPtr("p1")
	e.Cost = decPtr(14000)
	e.RealMarketSalary = decPtr(9000)
	pool := []employee.Employee{e}

	// A plain signed-in viewer drilling into an ungated dimension gets the
	// row, but never its salary columns.
	rows, err := DrillDownByLabel(pool, DimensionProject, "Iron Dome", refs, Viewer{SignedIn: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].EstimatedSalary)
	assert.Nil(t, rows[0].SalaryGap)

	// A manager gets the estimate but not the gap.
	rows, err = DrillDownByLabel(pool, DimensionProject, "Iron Dome", refs, Viewer{SignedIn: true, IsManager: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotNil(t, rows[0].EstimatedSalary)
	assert.Nil(t, rows[0].SalaryGap)
}

func TestDrillDownLeftEmployeeShowsLeavingReason(t *testing.T) {
	refs := testRefs()

	e := testEmployee("1", "Avi Cohen")
	e.IsLeft = true
	e.LeavingReasonID = strPtr("lr1")

	rows, err := DrillDownByLabel([]employee.Employee{e}, DimensionLeavingReason, "Relocation", refs, Viewer{SignedIn: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Relocation", rows[0].LeavingReason)
}
