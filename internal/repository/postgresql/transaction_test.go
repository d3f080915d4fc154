package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/pkg/database"
)

type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (s *stubTx) Commit(ctx context.Context) error {
	s.committed = true
	return nil
}

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rolledBack = true
	return nil
}

type stubBeginner struct {
	tx  *stubTx
	err error
}

func (s *stubBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tx, nil
}

func TestWithTransactionCommitsOnSuccess(t *testing.T) {
	tx := &stubTx{}
	db := &stubBeginner{tx: tx}

	var got pgx.Tx
	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		got = tx
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, tx, got)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	tx := &stubTx{}
	db := &stubBeginner{tx: tx}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestWithTransactionBeginFailure(t *testing.T) {
	db := &stubBeginner{err: errors.New("pool exhausted")}

	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})
	assert.Error(t, err)
}

func TestGetQuerierPrefersContextTransaction(t *testing.T) {
	tx := &stubTx{}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	got := GetQuerier(ctx, &database.DB{})
	assert.Same(t, tx, got)
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	got := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), got)
}
