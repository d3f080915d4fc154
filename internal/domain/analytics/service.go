package analytics

import "context"

// AnalyticsService computes the chart-ready aggregates. Every call fetches a
// fresh snapshot of the employee set and the lookup tables, runs the pure
// in-memory engine over it, and discards the snapshot; nothing is cached or
// patched incrementally.
type AnalyticsService interface {
	// GetDashboard computes every aggregate the viewer's role permits.
	GetDashboard(ctx context.Context, criteria Criteria) (*DashboardResponse, error)

	// GetTrends computes the hiring and seniority time series alone.
	GetTrends(ctx context.Context, criteria Criteria) (*TrendsResponse, error)

	// DrillDown returns the exact member set of a clicked chart segment,
	// enriched for table display and sorted by full name.
	DrillDown(ctx context.Context, req DrillDownRequest) ([]EmployeeRow, error)
}
