package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/infrastructure/postgres"
)

const insertEmployeeQuery = `
		INSERT INTO employee (name, address, phone, email, contract_start, salary, username, employee_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

const selectEmployeeByIDQuery = `SELECT id, name, address, phone, email, contract_start, salary, username, employee_type FROM employee WHERE id = $1`

func sampleEmployee() *entity.Employee {
	return &entity.Employee{
		Name:          "Ana Díaz",
		Address:       "Av. Siempre Viva 742",
		Phone:         "987654321",
		Email:         "ana@example.com",
		ContractStart: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Salary:        decimal.RequireFromString("1500000.00"),
		Username:      "adiaz",
		Type:          entity.EmployeeStandard,
	}
}

func TestEmployeeRepoCreate_AssignsGeneratedID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	emp := sampleEmployee()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs(emp.Name, emp.Address, emp.Phone, emp.Email, emp.ContractStart,
			emp.Salary, emp.Username, string(emp.Type)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	repo := postgres.NewEmployeeRepository(mock)
	id, err := repo.Create(context.Background(), emp)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(7), emp.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepoCreate_RollsBackOnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	emp := sampleEmployee()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs(emp.Name, emp.Address, emp.Phone, emp.Email, emp.ContractStart,
			emp.Salary, emp.Username, string(emp.Type)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := postgres.NewEmployeeRepository(mock)
	_, err = repo.Create(context.Background(), emp)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, int64(0), emp.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepoGetByID_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := sampleEmployee()
	want.ID = 7

	rows := pgxmock.NewRows([]string{
		"id", "name", "address", "phone", "email", "contract_start", "salary", "username", "employee_type",
	}).AddRow(want.ID, want.Name, want.Address, want.Phone, want.Email,
		want.ContractStart, want.Salary, want.Username, string(want.Type))

	mock.ExpectQuery(regexp.QuoteMeta(selectEmployeeByIDQuery)).
		WithArgs(want.ID).
		WillReturnRows(rows)

	repo := postgres.NewEmployeeRepository(mock)
	got, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepoGetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectEmployeeByIDQuery)).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "address", "phone", "email", "contract_start", "salary", "username", "employee_type",
		}))

	repo := postgres.NewEmployeeRepository(mock)
	got, err := repo.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepoSearchByName_NoMatchesReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	query := `SELECT id, name, address, phone, email, contract_start, salary, username, employee_type FROM employee WHERE name ILIKE $1 ORDER BY name`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("%nadie%").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "address", "phone", "email", "contract_start", "salary", "username", "employee_type",
		}))

	repo := postgres.NewEmployeeRepository(mock)
	got, err := repo.SearchByName(context.Background(), "nadie")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepoDelete_SecondDeleteReportsZeroRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	deleteQuery := regexp.QuoteMeta(`DELETE FROM employee WHERE id = $1`)

	mock.ExpectBegin()
	mock.ExpectExec(deleteQuery).WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(deleteQuery).WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectCommit()

	repo := postgres.NewEmployeeRepository(mock)

	n, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepoUpdate_ReportsAffectedRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	emp := sampleEmployee()
	emp.ID = 7

	updateQuery := `
		UPDATE employee
		SET name = $2, address = $3, phone = $4, email = $5, contract_start = $6,
		    salary = $7, username = $8, employee_type = $9
		WHERE id = $1`

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
		WithArgs(emp.ID, emp.Name, emp.Address, emp.Phone, emp.Email, emp.ContractStart,
			emp.Salary, emp.Username, string(emp.Type)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := postgres.NewEmployeeRepository(mock)
	n, err := repo.Update(context.Background(), emp)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
