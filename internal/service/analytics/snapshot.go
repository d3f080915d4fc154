package analytics

import (
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
)

// Snapshot is one immutable fetch of the full employee set plus every lookup
// table. All aggregation within a request runs against a single snapshot, so
// a chart and the drill-down it triggers always see the same rows; a change
// in the source data is picked up by the next request's snapshot wholesale,
// never patched into this one.
type Snapshot struct {
	Employees []employee.Employee // left records included
	Refs      *reference.Set
}

// Active returns the employees the active dashboards aggregate over. Left
// records must not contribute to any active aggregate.
func (s *Snapshot) Active() []employee.Employee {
	out := make([]employee.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		if !e.IsLeft {
			out = append(out, e)
		}
	}
	return out
}

// Left returns the flagged records; only the leaving-reason chart and its
// drill-down read them.
func (s *Snapshot) Left() []employee.Employee {
	var out []employee.Employee
	for _, e := range s.Employees {
		if e.IsLeft {
			out = append(out, e)
		}
	}
	return out
}
