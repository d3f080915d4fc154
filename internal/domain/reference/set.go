package reference

// Undefined is the sentinel label returned when a foreign key is nil or no
// longer present in its lookup table. Dashboards group unresolved ids under
// this label instead of failing.
const Undefined = "undefined"

// Set holds one snapshot of every lookup table, keyed by kind. It is built
// once per analytics request and treated as immutable afterwards.
type Set struct {
	tables map[Kind][]Reference
}

func NewSet() *Set {
	return &Set{tables: make(map[Kind][]Reference)}
}

// Put replaces the table for a kind.
func (s *Set) Put(kind Kind, refs []Reference) {
	s.tables[kind] = refs
}

// Table returns the stored rows for a kind.
func (s *Set) Table(kind Kind) []Reference {
	return s.tables[kind]
}

// Name resolves a foreign key to its display name. A nil id, or an id the
// table no longer contains, resolves to the Undefined sentinel. Tables hold
// tens of rows at most, so a linear scan is fine.
func (s *Set) Name(kind Kind, id *string) string {
	return s.NameOr(kind, id, Undefined)
}

// NameOr is Name with a caller-chosen sentinel. Table call sites prefer "-"
// over the grouping sentinel.
func (s *Set) NameOr(kind Kind, id *string, sentinel string) string {
	if id == nil || *id == "" {
		return sentinel
	}
	for _, ref := range s.tables[kind] {
		if ref.ID == *id {
			return ref.Name
		}
	}
	return sentinel
}

// Names returns the declared display names of a kind in table order. Trend
// charts use this as the complete series legend, zero counts included.
func (s *Set) Names(kind Kind) []string {
	table := s.tables[kind]
	names := make([]string, 0, len(table))
	for _, ref := range table {
		names = append(names, ref.Name)
	}
	return names
}
