package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testRefs builds a small lookup snapshot shared by the engine tests.
func testRefs() *reference.Set {
	refs := reference.NewSet()
	refs.Put(reference.KindProject, []reference.Reference{
		{ID: "p1", Kind: reference.KindProject, Name: "Iron Dome"},
		{ID: "p2", Kind: reference.KindProject, Name: "Atlas"},
	})
	refs.Put(reference.KindBranch, []reference.Reference{
		{ID: "b1", Kind: reference.KindBranch, Name: "Tel Aviv"},
	})
	refs.Put(reference.KindSeniority, []reference.Reference{
		{ID: "s1", Kind: reference.KindSeniority, Name: "Junior"},
		{ID: "s2", Kind: reference.KindSeniority, Name: "Senior"},
	})
	refs.Put(reference.KindLeavingReason, []reference.Reference{
		{ID: "lr1", Kind: reference.KindLeavingReason, Name: "Relocation"},
	})
	return refs
}

func testEmployee(id, name string) employee.Employee {
	return employee.Employee{
		ID:        id,
		FullName:  name,
		IDNumber:  "100" + id,
		StartDate: date(2023, time.March, 15),
	}
}
