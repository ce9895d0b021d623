package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Las transacciones se manejan a mano (no con los helpers) porque este
// gateway distingue la violación de unicidad de username del fallo genérico.
type UserRepo struct {
	db Database
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Database) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, username, password_hash, full_name, role, active`

// Create persiste un nuevo usuario y asigna la PK generada. Username
// duplicado → DuplicateValueError("username", valor).
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, full_name, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "insertar usuario", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, query, u.Username, u.PasswordHash, u.FullName, u.Role, u.Active).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &domain.DuplicateValueError{Field: "username", Value: u.Username}
		}
		return 0, &domain.PersistenceError{Op: "insertar usuario", Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, &domain.PersistenceError{Op: "insertar usuario", Err: err}
	}
	u.ID = id
	return id, nil
}

// GetByID obtiene un usuario por ID. Sin fila → NotFoundError.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "usuario"}
		}
		return nil, &domain.PersistenceError{Op: "obtener usuario por id", Err: err}
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no
// existe: la ausencia no es un error en el pre-chequeo ni en el login.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "obtener usuario por username", Err: err}
	}
	return &u, nil
}

// List devuelve todos los usuarios ordenados por ID.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "listar usuarios", Err: err}
	}
	defer rows.Close()

	list := make([]entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "listar usuarios", Err: err}
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "listar usuarios", Err: err}
	}
	return list, nil
}

// Update actualiza todos los campos de un usuario existente. Username
// duplicado → DuplicateValueError; devuelve filas afectadas.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) (int64, error) {
	query := `
		UPDATE users
		SET username = $2, password_hash = $3, full_name = $4, role = $5, active = $6
		WHERE id = $1`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "actualizar usuario", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.FullName, u.Role, u.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &domain.DuplicateValueError{Field: "username", Value: u.Username}
		}
		return 0, &domain.PersistenceError{Op: "actualizar usuario", Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, &domain.PersistenceError{Op: "actualizar usuario", Err: err}
	}
	return tag.RowsAffected(), nil
}

// Delete elimina físicamente un usuario por ID. Devuelve filas afectadas.
func (r *UserRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return execInTx(ctx, r.db, "eliminar usuario", `DELETE FROM users WHERE id = $1`, id)
}

func scanUser(s interface{ Scan(dest ...any) error }) (entity.User, error) {
	var u entity.User
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role, &u.Active)
	if err != nil {
		return entity.User{}, err
	}
	return u, nil
}
