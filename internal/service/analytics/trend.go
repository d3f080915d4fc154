package analytics

import (
	"time"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
)

// seniorityTrendEpoch anchors the fixed-window seniority trend. The hiring
// trend uses a rolling trailing-12-months window instead; the two windows
// are distinct call sites, not a parameter of one merged function.
var seniorityTrendEpoch = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

const monthLayout = "2006-01"

// MonthWindow lists the first day of every calendar month between start and
// end inclusive, ascending.
func MonthWindow(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []time.Time
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// HiringTrend counts employees whose start date falls inside each of the
// trailing twelve months anchored to now. This is an exact per-month count,
// not a cumulative one. Records without a start date are excluded.
func HiringTrend(employees []employee.Employee, now time.Time) []analytics.TrendPoint {
	// Truncate to the first of the month before stepping back: subtracting
	// 11 months from a day the target month lacks (Aug 31 back to September)
	// normalizes forward and would shrink the window to 11 months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := MonthWindow(anchor.AddDate(0, -11, 0), now)

	points := make([]analytics.TrendPoint, 0, len(months))
	for _, m := range months {
		next := m.AddDate(0, 1, 0)
		count := 0
		for _, e := range employees {
			if e.StartDate.IsZero() {
				continue
			}
			if !e.StartDate.Before(m) && e.StartDate.Before(next) {
				count++
			}
		}
		points = append(points, analytics.TrendPoint{
			Month: m.Format(monthLayout),
			Count: count,
		})
	}
	return points
}

// SeniorityTrend reconstructs headcount as of the end of every month from
// the epoch to now: an employee counts in month M when their start date is
// on or before M's last day. The series is split by the employee's current
// seniority. Category history is not stored, so a promotion today recolors
// every past month. That approximation is preserved deliberately.
//
// Every declared seniority gets a series even when all its months are zero,
// plus an "undefined" series for unresolved ids, so chart legends stay
// stable across filter changes.
func SeniorityTrend(employees []employee.Employee, refs *reference.Set, now time.Time) analytics.SeniorityTrendResponse {
	months := MonthWindow(seniorityTrendEpoch, now)

	names := append(refs.Names(reference.KindSeniority), undefinedLabel)
	counts := make(map[string][]int, len(names))
	for _, name := range names {
		counts[name] = make([]int, len(months))
	}

	for _, e := range employees {
		if e.StartDate.IsZero() {
			continue
		}
		series := refs.Name(reference.KindSeniority, e.SeniorityID)
		row, ok := counts[series]
		if !ok {
			// Seniority row deleted after the employee was tagged with it;
			// the resolver already degraded it to the sentinel, so this only
			// guards against a Names/Name mismatch.
			row = counts[undefinedLabel]
			series = undefinedLabel
		}
		for i, m := range months {
			endOfMonth := m.AddDate(0, 1, 0)
			if e.StartDate.Before(endOfMonth) {
				row[i]++
			}
		}
		counts[series] = row
	}

	series := make([]analytics.TrendSeries, 0, len(names))
	for _, name := range names {
		series = append(series, analytics.TrendSeries{Name: name, Counts: counts[name]})
	}

	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.Format(monthLayout)
	}

	return analytics.SeniorityTrendResponse{Months: labels, Series: series}
}
