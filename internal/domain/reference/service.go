package reference

import "context"

// ReferenceService defines business logic for the lookup tables.
type ReferenceService interface {
	// List returns every row of one lookup kind.
	List(ctx context.Context, kind Kind) ([]ReferenceResponse, error)

	// Create adds a row to a lookup kind (manager+ only).
	Create(ctx context.Context, kind Kind, req CreateReferenceRequest) (ReferenceResponse, error)

	// Update renames or re-describes a row (manager+ only).
	Update(ctx context.Context, kind Kind, req UpdateReferenceRequest) error

	// Delete removes a row (manager+ only). Employees still pointing at the
	// deleted id resolve to the Undefined sentinel afterwards.
	Delete(ctx context.Context, kind Kind, id string) error
}
