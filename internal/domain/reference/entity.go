package reference

import "time"

// Reference is a single row of a lookup table (project, branch, role, ...).
// Employees point at these by id and never embed them.
type Reference struct {
	ID          string
	Kind        Kind
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Kind string

const (
	KindProject          Kind = "project"
	KindBranch           Kind = "branch"
	KindRole             Kind = "role"
	KindCompany          Kind = "company"
	KindSeniority        Kind = "seniority"
	KindLeavingReason    Kind = "leaving_reason"
	KindPerformanceLevel Kind = "performance_level"
)

// Kinds returns every lookup kind in canonical order.
func Kinds() []Kind {
	return []Kind{
		KindProject,
		KindBranch,
		KindRole,
		KindCompany,
		KindSeniority,
		KindLeavingReason,
		KindPerformanceLevel,
	}
}

// ParseKind validates a URL path segment into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}
