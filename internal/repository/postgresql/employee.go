package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, full_name, id_number, city,
	project_id, branch_id, role_id, company_id, seniority_id,
	leaving_reason_id, performance_level_id,
	cost, real_market_salary, professional_experience_years,
	start_date, birth_date,
	unit_criticality, attrition_risk, company_attrition_risk,
	is_our_sourcing, is_revolving_door, is_left, left_date,
	attrition_risk_reason, retention_plan, company_retention_plan,
	commander_summary_and_status, replacement_needed,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.IDNumber, &e.City,
		&e.ProjectID, &e.BranchID, &e.RoleID, &e.CompanyID, &e.SeniorityID,
		&e.LeavingReasonID, &e.PerformanceLevelID,
		&e.Cost, &e.RealMarketSalary, &e.ProfessionalExperienceYears,
		&e.StartDate, &e.BirthDate,
		&e.UnitCriticality, &e.AttritionRisk, &e.CompanyAttritionRisk,
		&e.IsOurSourcing, &e.IsRevolvingDoor, &e.IsLeft, &e.LeftDate,
		&e.AttritionRiskReason, &e.RetentionPlan, &e.CompanyRetentionPlan,
		&e.CommanderSummaryAndStatus, &e.ReplacementNeeded,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetAll implements employee.EmployeeRepository. The analytics engine reads
// the whole collection at once and aggregates in memory; no partial queries.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context, includeLeft bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if !includeLeft {
		query += ` WHERE is_left = FALSE`
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// ExistsByIDNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id_number = $1)`, idNumber).Scan(&exists)
	return exists, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, id_number, city,
			project_id, branch_id, role_id, company_id, seniority_id,
			performance_level_id,
			cost, real_market_salary, professional_experience_years,
			start_date, birth_date,
			unit_criticality, attrition_risk, company_attrition_risk,
			is_our_sourcing, is_revolving_door,
			attrition_risk_reason, retention_plan, company_retention_plan,
			commander_summary_and_status, replacement_needed,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, NOW(), NOW()
		)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		e.ID, e.FullName, e.IDNumber, e.City,
		e.ProjectID, e.BranchID, e.RoleID, e.CompanyID, e.SeniorityID,
		e.PerformanceLevelID,
		e.Cost, e.RealMarketSalary, e.ProfessionalExperienceYears,
		e.StartDate, e.BirthDate,
		e.UnitCriticality, e.AttritionRisk, e.CompanyAttritionRisk,
		e.IsOurSourcing, e.IsRevolvingDoor,
		e.AttritionRiskReason, e.RetentionPlan, e.CompanyRetentionPlan,
		e.CommanderSummaryAndStatus, e.ReplacementNeeded,
	))
}

// Update implements employee.EmployeeRepository as a partial field update:
// only the non-nil request fields reach the SET clause.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.FullName != nil {
		add("full_name", *req.FullName)
	}
	if req.IDNumber != nil {
		add("id_number", *req.IDNumber)
	}
	if req.City != nil {
		add("city", *req.City)
	}
	if req.ProjectID != nil {
		add("project_id", *req.ProjectID)
	}
	if req.BranchID != nil {
		add("branch_id", *req.BranchID)
	}
	if req.RoleID != nil {
		add("role_id", *req.RoleID)
	}
	if req.CompanyID != nil {
		add("company_id", *req.CompanyID)
	}
	if req.SeniorityID != nil {
		add("seniority_id", *req.SeniorityID)
	}
	if req.PerformanceLevelID != nil {
		add("performance_level_id", *req.PerformanceLevelID)
	}
	if req.Cost != nil {
		add("cost", *req.Cost)
	}
	if req.RealMarketSalary != nil {
		add("real_market_salary", *req.RealMarketSalary)
	}
	if req.ProfessionalExperienceYears != nil {
		add("professional_experience_years", *req.ProfessionalExperienceYears)
	}
	if req.StartDate != nil {
		add("start_date", *req.StartDate)
	}
	if req.BirthDate != nil {
		add("birth_date", *req.BirthDate)
	}
	if req.UnitCriticality != nil {
		add("unit_criticality", *req.UnitCriticality)
	}
	if req.AttritionRisk != nil {
		add("attrition_risk", *req.AttritionRisk)
	}
	if req.CompanyAttritionRisk != nil {
		add("company_attrition_risk", *req.CompanyAttritionRisk)
	}
	if req.IsOurSourcing != nil {
		add("is_our_sourcing", *req.IsOurSourcing)
	}
	if req.IsRevolvingDoor != nil {
		add("is_revolving_door", *req.IsRevolvingDoor)
	}
	if req.AttritionRiskReason != nil {
		add("attrition_risk_reason", *req.AttritionRiskReason)
	}
	if req.RetentionPlan != nil {
		add("retention_plan", *req.RetentionPlan)
	}
	if req.CompanyRetentionPlan != nil {
		add("company_retention_plan", *req.CompanyRetentionPlan)
	}
	if req.CommanderSummaryAndStatus != nil {
		add("commander_summary_and_status", *req.CommanderSummaryAndStatus)
	}
	if req.ReplacementNeeded != nil {
		add("replacement_needed", *req.ReplacementNeeded)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(
		`UPDATE employees SET %s, updated_at = NOW() WHERE id = $%d RETURNING id`,
		strings.Join(sets, ", "), len(args),
	)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return err
	}
	return nil
}

// MarkAsLeft implements employee.EmployeeRepository. The row is flagged and
// kept; analytics needs left records for the leaving-reason chart.
func (r *employeeRepositoryImpl) MarkAsLeft(ctx context.Context, req employee.MarkAsLeftRequest) error {
	q := GetQuerier(ctx, r.db)

	leftDate, err := time.Parse("2006-01-02", req.LeftDate)
	if err != nil {
		return fmt.Errorf("parse left date: %w", err)
	}

	query := `
		UPDATE employees
		SET is_left = TRUE, left_date = $1, leaving_reason_id = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	return q.QueryRow(ctx, query, leftDate, req.LeavingReasonID, req.ID).Scan(&updatedID)
}
