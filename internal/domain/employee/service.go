package employee

import "context"

// EmployeeService defines business logic for employee record keeping.
type EmployeeService interface {
	// ListEmployees lists active employees; includeLeft adds flagged ones.
	ListEmployees(ctx context.Context, includeLeft bool) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee (manager+ only).
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial field update (manager+ only).
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// MarkAsLeft flags an employee as left, capturing left date and reason.
	// Records are never hard-deleted.
	MarkAsLeft(ctx context.Context, req MarkAsLeftRequest) error
}
