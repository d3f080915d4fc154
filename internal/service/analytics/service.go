package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
	"github.com/talentwatch/retention-backend-go/internal/domain/user"
)

type AnalyticsServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	referenceRepo reference.ReferenceRepository
}

func NewAnalyticsService(employeeRepo employee.EmployeeRepository, referenceRepo reference.ReferenceRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		employeeRepo:  employeeRepo,
		referenceRepo: referenceRepo,
	}
}

// loadSnapshot fetches the full employee set and all seven lookup tables in
// parallel. One snapshot per request; nothing downstream refetches.
func (s *AnalyticsServiceImpl) loadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Refs: reference.NewSet()}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		emps, err := s.employeeRepo.GetAll(gCtx, true)
		if err != nil {
			return fmt.Errorf("fetch employees: %w", err)
		}
		snap.Employees = emps
		return nil
	})

	tables := make([][]reference.Reference, len(reference.Kinds()))
	for i, kind := range reference.Kinds() {
		g.Go(func() error {
			refs, err := s.referenceRepo.ListByKind(gCtx, kind)
			if err != nil {
				return fmt.Errorf("fetch %s table: %w", kind, err)
			}
			tables[i] = refs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, kind := range reference.Kinds() {
		snap.Refs.Put(kind, tables[i])
	}
	return snap, nil
}

// GetDashboard implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetDashboard(ctx context.Context, criteria analytics.Criteria) (*analytics.DashboardResponse, error) {
	v := ViewerFromContext(ctx)
	if !v.SignedIn {
		// Nothing would be computed; skip the fetch too.
		return &analytics.DashboardResponse{}, nil
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeDashboard(snap, criteria, v, time.Now()), nil
}

// GetTrends implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetTrends(ctx context.Context, criteria analytics.Criteria) (*analytics.TrendsResponse, error) {
	if !ViewerFromContext(ctx).SignedIn {
		return &analytics.TrendsResponse{}, nil
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := Filter(snap.Active(), criteria)
	return &analytics.TrendsResponse{
		Hiring:    HiringTrend(active, now),
		Seniority: SeniorityTrend(active, snap.Refs, now),
	}, nil
}

// DrillDown implements analytics.AnalyticsService. The client sends back the
// criteria the chart was rendered with, so membership is re-derived from the
// same inputs the chart used; a set that changed since rendering resolves to
// whatever the fresh snapshot holds, possibly empty, which is a normal
// outcome.
func (s *AnalyticsServiceImpl) DrillDown(ctx context.Context, req analytics.DrillDownRequest) ([]analytics.EmployeeRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dim := Dimension(req.Dimension)
	v := ViewerFromContext(ctx)
	if err := checkDimensionAccess(dim, v); err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	// The leaving-reason chart is built over the left subset; every other
	// dimension drills into the active one.
	var pool []employee.Employee
	if dim == DimensionLeavingReason {
		pool = Filter(snap.Left(), req.Criteria)
	} else {
		pool = Filter(snap.Active(), req.Criteria)
	}

	if _, bucketed := BucketRanges(dim); bucketed {
		rng, err := requestedRange(dim, req)
		if err != nil {
			return nil, err
		}
		return DrillDownByRange(pool, dim, rng, snap.Refs, v)
	}
	return DrillDownByLabel(pool, dim, req.Label, snap.Refs, v)
}

// requestedRange rebuilds the clicked band from the request's min/max pair,
// validating it against the dimension's fixed band table.
func requestedRange(dim Dimension, req analytics.DrillDownRequest) (Range, error) {
	if req.Min == nil && req.Max == nil {
		return Range{}, analytics.ErrRangeRequired
	}
	min := math.Inf(-1)
	if req.Min != nil {
		min = *req.Min
	}
	max := math.Inf(1)
	if req.Max != nil {
		max = *req.Max
	}

	ranges, _ := BucketRanges(dim)
	rng, ok := RangeFor(ranges, min, max)
	if !ok {
		return Range{}, analytics.ErrRangeRequired
	}
	return rng, nil
}

// checkDimensionAccess enforces the same gating as the dashboard build: a
// viewer who never saw a chart cannot drill into it. Drill-down returns
// per-row data, so unlike the dashboard's silent skip a signed-out caller
// gets an explicit error.
func checkDimensionAccess(dim Dimension, v Viewer) error {
	if !v.SignedIn {
		return user.ErrSignInRequired
	}
	switch dim {
	case DimensionSalary:
		if !v.IsManager {
			return user.ErrManagerAccessRequired
		}
	case DimensionSalaryGap:
		if !v.IsSuperAdmin {
			return user.ErrSuperAdminAccessRequired
		}
	}
	return nil
}
