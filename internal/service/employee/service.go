package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           postgresql.TxBeginner
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db postgresql.TxBeginner, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, employeeRepo: employeeRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, includeLeft bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx, includeLeft)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return employee.EmployeeResponse{}, employee.ErrStartDateRequired
	}

	entity := employee.Employee{
		ID:                          uuid.NewString(),
		FullName:                    req.FullName,
		IDNumber:                    req.IDNumber,
		City:                        req.City,
		ProjectID:                   req.ProjectID,
		BranchID:                    req.BranchID,
		RoleID:                      req.RoleID,
		CompanyID:                   req.CompanyID,
		SeniorityID:                 req.SeniorityID,
		PerformanceLevelID:          req.PerformanceLevelID,
		Cost:                        toDecimal(req.Cost),
		RealMarketSalary:            toDecimal(req.RealMarketSalary),
		ProfessionalExperienceYears: req.ProfessionalExperienceYears,
		StartDate:                   startDate,
		UnitCriticality:             req.UnitCriticality,
		AttritionRisk:               req.AttritionRisk,
		CompanyAttritionRisk:        req.CompanyAttritionRisk,
		IsOurSourcing:               req.IsOurSourcing,
		IsRevolvingDoor:             req.IsRevolvingDoor,
		AttritionRiskReason:         req.AttritionRiskReason,
		RetentionPlan:               req.RetentionPlan,
		CompanyRetentionPlan:        req.CompanyRetentionPlan,
		CommanderSummaryAndStatus:   req.CommanderSummaryAndStatus,
		ReplacementNeeded:           employee.ReplacementUndecided,
	}
	if req.BirthDate != nil {
		if bd, err := time.Parse("2006-01-02", *req.BirthDate); err == nil {
			entity.BirthDate = &bd
		}
	}
	if req.ReplacementNeeded != nil {
		entity.ReplacementNeeded = employee.ReplacementNeeded(*req.ReplacementNeeded)
	}

	// The id-number check and the insert run in one transaction so a
	// concurrent create with the same id number cannot slip between them.
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.employeeRepo.ExistsByIDNumber(txCtx, req.IDNumber)
		if err != nil {
			return fmt.Errorf("check id number: %w", err)
		}
		if exists {
			return employee.ErrIDNumberExists
		}

		created, err = s.employeeRepo.Create(txCtx, entity)
		if err != nil {
			return fmt.Errorf("create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

// MarkAsLeft implements employee.EmployeeService.
func (s *EmployeeServiceImpl) MarkAsLeft(ctx context.Context, req employee.MarkAsLeftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Check-then-flag runs in one transaction; two racing requests cannot
	// both pass the already-left check.
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return err
		}
		if current.IsLeft {
			return employee.ErrEmployeeAlreadyLeft
		}

		if err := s.employeeRepo.MarkAsLeft(txCtx, req); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return err
		}
		return nil
	})
}

func toDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                          e.ID,
		FullName:                    e.FullName,
		IDNumber:                    e.IDNumber,
		City:                        e.City,
		ProjectID:                   e.ProjectID,
		BranchID:                    e.BranchID,
		RoleID:                      e.RoleID,
		CompanyID:                   e.CompanyID,
		SeniorityID:                 e.SeniorityID,
		LeavingReasonID:             e.LeavingReasonID,
		PerformanceLevelID:          e.PerformanceLevelID,
		ProfessionalExperienceYears: e.ProfessionalExperienceYears,
		StartDate:                   e.StartDate.Format("2006-01-02"),
		UnitCriticality:             e.UnitCriticality,
		AttritionRisk:               e.AttritionRisk,
		CompanyAttritionRisk:        e.CompanyAttritionRisk,
		IsOurSourcing:               e.IsOurSourcing,
		IsRevolvingDoor:             e.IsRevolvingDoor,
		IsLeft:                      e.IsLeft,
		AttritionRiskReason:         e.AttritionRiskReason,
		RetentionPlan:               e.RetentionPlan,
		CompanyRetentionPlan:        e.CompanyRetentionPlan,
		CommanderSummaryAndStatus:   e.CommanderSummaryAndStatus,
		ReplacementNeeded:           string(e.ReplacementNeeded),
	}
	if e.Cost != nil {
		cost := e.Cost.InexactFloat64()
		resp.Cost = &cost
	}
	if e.RealMarketSalary != nil {
		salary := e.RealMarketSalary.InexactFloat64()
		resp.RealMarketSalary = &salary
	}
	if e.BirthDate != nil {
		bd := e.BirthDate.Format("2006-01-02")
		resp.BirthDate = &bd
	}
	if e.LeftDate != nil {
		ld := e.LeftDate.Format("2006-01-02")
		resp.LeftDate = &ld
	}
	return resp
}
