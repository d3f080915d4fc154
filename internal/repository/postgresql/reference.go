package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
	"github.com/talentwatch/retention-backend-go/internal/pkg/database"
)

// All seven lookup kinds share one table, discriminated by the kind column.
type referenceRepositoryImpl struct {
	db *database.DB
}

func NewReferenceRepository(db *database.DB) reference.ReferenceRepository {
	return &referenceRepositoryImpl{db: db}
}

// ListByKind implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) ListByKind(ctx context.Context, kind reference.Kind) ([]reference.Reference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, kind, name, description, created_at, updated_at
		FROM reference_values
		WHERE kind = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []reference.Reference
	for rows.Next() {
		var ref reference.Reference
		if err := rows.Scan(&ref.ID, &ref.Kind, &ref.Name, &ref.Description, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// GetByID implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) GetByID(ctx context.Context, kind reference.Kind, id string) (reference.Reference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, kind, name, description, created_at, updated_at
		FROM reference_values
		WHERE kind = $1 AND id = $2
	`

	var ref reference.Reference
	err := q.QueryRow(ctx, query, kind, id).Scan(&ref.ID, &ref.Kind, &ref.Name, &ref.Description, &ref.CreatedAt, &ref.UpdatedAt)
	return ref, err
}

// Create implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) Create(ctx context.Context, ref reference.Reference) (reference.Reference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reference_values (id, kind, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, kind, name, description, created_at, updated_at
	`

	var created reference.Reference
	err := q.QueryRow(ctx, query, ref.ID, ref.Kind, ref.Name, ref.Description).
		Scan(&created.ID, &created.Kind, &created.Name, &created.Description, &created.CreatedAt, &created.UpdatedAt)
	return created, err
}

// Update implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) Update(ctx context.Context, kind reference.Kind, req reference.UpdateReferenceRequest) error {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, kind, req.ID)
	query := fmt.Sprintf(
		`UPDATE reference_values SET %s, updated_at = NOW() WHERE kind = $%d AND id = $%d RETURNING id`,
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	var updatedID string
	return q.QueryRow(ctx, query, args...).Scan(&updatedID)
}

// Delete implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) Delete(ctx context.Context, kind reference.Kind, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM reference_values WHERE kind = $1 AND id = $2`, kind, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
