package employee

import "context"

type EmployeeRepository interface {
	// GetAll fetches the full employee set in one query. The analytics
	// engine filters and aggregates in memory; there are no partial queries.
	GetAll(ctx context.Context, includeLeft bool) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	MarkAsLeft(ctx context.Context, req MarkAsLeftRequest) error
}
