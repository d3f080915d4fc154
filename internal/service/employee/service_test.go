package employee

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx *fakeTx
}

func (f *fakeBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return f.tx, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	existing      map[string]bool
	byID          map[string]employee.Employee
	created       *employee.Employee
	left          *employee.MarkAsLeftRequest
	sawTxOnExists bool
	sawTxOnCreate bool
	sawTxOnLeft   bool
}

func ctxHasTx(ctx context.Context) bool {
	_, ok := ctx.Value("tx").(pgx.Tx)
	return ok
}

func (f *fakeEmployeeRepo) ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error) {
	f.sawTxOnExists = ctxHasTx(ctx)
	return f.existing[idNumber], nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.sawTxOnCreate = ctxHasTx(ctx)
	f.created = &emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) MarkAsLeft(ctx context.Context, req employee.MarkAsLeftRequest) error {
	f.sawTxOnLeft = ctxHasTx(ctx)
	f.left = &req
	return nil
}

func TestCreateEmployeeRunsInTransaction(t *testing.T) {
	tx := &fakeTx{}
	repo := &fakeEmployeeRepo{existing: map[string]bool{}}
	svc := NewEmployeeService(&fakeBeginner{tx: tx}, repo)

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:  "Dana Peretz",
		IDNumber:  "304857221",
		StartDate: "2024-02-01",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, repo.sawTxOnExists, "id-number check must run on the transaction")
	assert.True(t, repo.sawTxOnCreate, "insert must run on the transaction")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestCreateEmployeeDuplicateIDNumberRollsBack(t *testing.T) {
	tx := &fakeTx{}
	repo := &fakeEmployeeRepo{existing: map[string]bool{"304857221": true}}
	svc := NewEmployeeService(&fakeBeginner{tx: tx}, repo)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:  "Dana Peretz",
		IDNumber:  "304857221",
		StartDate: "2024-02-01",
	})

	assert.ErrorIs(t, err, employee.ErrIDNumberExists)
	assert.Nil(t, repo.created)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestMarkAsLeftAlreadyLeft(t *testing.T) {
	tx := &fakeTx{}
	repo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", IsLeft: true, StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewEmployeeService(&fakeBeginner{tx: tx}, repo)

	err := svc.MarkAsLeft(context.Background(), employee.MarkAsLeftRequest{
		ID:       "emp-1",
		LeftDate: "2025-06-30",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyLeft)
	assert.Nil(t, repo.left)
	assert.True(t, tx.rolledBack)
}

func TestMarkAsLeftRunsInTransaction(t *testing.T) {
	tx := &fakeTx{}
	repo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewEmployeeService(&fakeBeginner{tx: tx}, repo)

	err := svc.MarkAsLeft(context.Background(), employee.MarkAsLeftRequest{
		ID:       "emp-1",
		LeftDate: "2025-06-30",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.left)
	assert.True(t, repo.sawTxOnLeft, "flag update must run on the transaction")
	assert.True(t, tx.committed)
}

func TestMarkAsLeftNotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeBeginner{tx: &fakeTx{}}, &fakeEmployeeRepo{byID: map[string]employee.Employee{}})

	err := svc.MarkAsLeft(context.Background(), employee.MarkAsLeftRequest{
		ID:       "missing",
		LeftDate: "2025-06-30",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
