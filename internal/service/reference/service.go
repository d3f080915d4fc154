package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
)

type ReferenceServiceImpl struct {
	referenceRepo reference.ReferenceRepository
}

func NewReferenceService(referenceRepo reference.ReferenceRepository) reference.ReferenceService {
	return &ReferenceServiceImpl{referenceRepo: referenceRepo}
}

// List implements reference.ReferenceService.
func (s *ReferenceServiceImpl) List(ctx context.Context, kind reference.Kind) ([]reference.ReferenceResponse, error) {
	refs, err := s.referenceRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	// Empty table is a valid state, not an error.
	responses := make([]reference.ReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		responses = append(responses, reference.ToResponse(ref))
	}
	return responses, nil
}

// Create implements reference.ReferenceService.
func (s *ReferenceServiceImpl) Create(ctx context.Context, kind reference.Kind, req reference.CreateReferenceRequest) (reference.ReferenceResponse, error) {
	if err := req.Validate(); err != nil {
		return reference.ReferenceResponse{}, err
	}

	entity := reference.Reference{
		ID:          uuid.NewString(),
		Kind:        kind,
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.referenceRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return reference.ReferenceResponse{}, reference.ErrReferenceNameTaken
		}
		return reference.ReferenceResponse{}, fmt.Errorf("create %s: %w", kind, err)
	}
	return reference.ToResponse(created), nil
}

// Update implements reference.ReferenceService.
func (s *ReferenceServiceImpl) Update(ctx context.Context, kind reference.Kind, req reference.UpdateReferenceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.referenceRepo.Update(ctx, kind, req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return reference.ErrReferenceNameTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return reference.ErrReferenceNotFound
		}
		return err
	}
	return nil
}

// Delete implements reference.ReferenceService. Employees keep their id; the
// analytics resolver degrades it to the sentinel from then on.
func (s *ReferenceServiceImpl) Delete(ctx context.Context, kind reference.Kind, id string) error {
	err := s.referenceRepo.Delete(ctx, kind, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reference.ErrReferenceNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return reference.ErrReferenceInUse
		}
		return err
	}
	return nil
}
