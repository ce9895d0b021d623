package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/infrastructure/postgres"
)

const insertUserQuery = `
		INSERT INTO users (username, password_hash, full_name, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

const selectUserByUsernameQuery = `SELECT id, username, password_hash, full_name, role, active FROM users WHERE username = $1`

func sampleUser() *entity.User {
	return &entity.User{
		Username:     "adiaz",
		PasswordHash: "$2a$12$abcdefghijklmnopqrstuv",
		FullName:     "Ana Díaz",
		Role:         entity.RoleUsuario,
		Active:       true,
	}
}

func TestUserRepoCreate_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	u := sampleUser()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
		WithArgs(u.Username, u.PasswordHash, u.FullName, u.Role, u.Active).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	repo := postgres.NewUserRepository(mock)
	id, err := repo.Create(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, int64(3), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoCreate_DuplicateUsername(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	u := sampleUser()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
		WithArgs(u.Username, u.PasswordHash, u.FullName, u.Role, u.Active).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	mock.ExpectRollback()

	repo := postgres.NewUserRepository(mock)
	_, err = repo.Create(context.Background(), u)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	var dup *domain.DuplicateValueError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "username", dup.Field)
	assert.Equal(t, "adiaz", dup.Value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByUsername_MissingIsNotAnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameQuery)).
		WithArgs("fantasma").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "username", "password_hash", "full_name", "role", "active",
		}))

	repo := postgres.NewUserRepository(mock)
	got, err := repo.GetByUsername(context.Background(), "fantasma")

	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByUsername_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := sampleUser()
	want.ID = 3

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameQuery)).
		WithArgs(want.Username).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "username", "password_hash", "full_name", "role", "active",
		}).AddRow(want.ID, want.Username, want.PasswordHash, want.FullName, want.Role, want.Active))

	repo := postgres.NewUserRepository(mock)
	got, err := repo.GetByUsername(context.Background(), want.Username)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	query := `SELECT id, username, password_hash, full_name, role, active FROM users WHERE id = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "username", "password_hash", "full_name", "role", "active",
		}))

	repo := postgres.NewUserRepository(mock)
	got, err := repo.GetByID(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoUpdate_DuplicateUsername(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	u := sampleUser()
	u.ID = 3

	updateQuery := `
		UPDATE users
		SET username = $2, password_hash = $3, full_name = $4, role = $5, active = $6
		WHERE id = $1`

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
		WithArgs(u.ID, u.Username, u.PasswordHash, u.FullName, u.Role, u.Active).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	mock.ExpectRollback()

	repo := postgres.NewUserRepository(mock)
	_, err = repo.Update(context.Background(), u)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}
