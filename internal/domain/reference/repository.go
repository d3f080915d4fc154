package reference

import "context"

type ReferenceRepository interface {
	ListByKind(ctx context.Context, kind Kind) ([]Reference, error)
	GetByID(ctx context.Context, kind Kind, id string) (Reference, error)
	Create(ctx context.Context, ref Reference) (Reference, error)
	Update(ctx context.Context, kind Kind, req UpdateReferenceRequest) error
	Delete(ctx context.Context, kind Kind, id string) error
}
