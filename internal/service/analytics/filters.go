package analytics

import (
	"strings"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

// Filter applies every criterion to the employee set and returns the records
// passing all of them. Predicates short-circuit per record; an empty
// selection set passes everything. The function is pure, so applying the
// same criteria twice yields the same set.
func Filter(employees []employee.Employee, c analytics.Criteria) []employee.Employee {
	out := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if matches(e, c) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e employee.Employee, c analytics.Criteria) bool {
	if !idInSet(e.ProjectID, c.ProjectIDs) {
		return false
	}
	if !idInSet(e.BranchID, c.BranchIDs) {
		return false
	}
	if !idInSet(e.RoleID, c.RoleIDs) {
		return false
	}
	if !idInSet(e.CompanyID, c.CompanyIDs) {
		return false
	}
	if !idInSet(e.SeniorityID, c.SeniorityIDs) {
		return false
	}
	if !labelInSet(scoreLabel(e.UnitCriticality), c.Criticalities) {
		return false
	}
	if !labelInSet(scoreLabel(e.AttritionRisk), c.AttritionRisks) {
		return false
	}
	if !boolInSet(e.IsOurSourcing, c.OurSourcing) {
		return false
	}
	if !boolInSet(e.IsRevolvingDoor, c.RevolvingDoor) {
		return false
	}
	if !matchesSearch(e, c.Search) {
		return false
	}
	if !inDateRange(e, c.StartDateFrom, c.StartDateTo) {
		return false
	}
	return true
}

// idInSet: empty set means no constraint. A record with a nil foreign key
// never matches a non-empty selection.
func idInSet(id *string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	if id == nil {
		return false
	}
	for _, s := range set {
		if s == *id {
			return true
		}
	}
	return false
}

func labelInSet(label string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}

func boolInSet(v bool, set []bool) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// matchesSearch is a case-insensitive substring match over the three
// searchable columns.
func matchesSearch(e employee.Employee, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(e.FullName), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(e.IDNumber), needle) {
		return true
	}
	if e.City != nil && strings.Contains(strings.ToLower(*e.City), needle) {
		return true
	}
	return false
}

// inDateRange compares ISO date strings lexicographically. All stored dates
// share the "YYYY-MM-DD" format, so this is exact and avoids timezone
// parsing. Bounds are inclusive.
func inDateRange(e employee.Employee, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	if e.StartDate.IsZero() {
		return false
	}
	date := e.StartDate.Format("2006-01-02")
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
