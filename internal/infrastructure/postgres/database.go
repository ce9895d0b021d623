package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

// Database es el subconjunto de *pgxpool.Pool que usan los gateways.
// Permite inyectar un mock (pgxmock) en los tests sin levantar PostgreSQL.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// execInTx ejecuta una sentencia de escritura dentro de una transacción:
// Begin → Exec → Commit, con Rollback diferido para cualquier salida con
// error. Devuelve las filas afectadas.
func execInTx(ctx context.Context, db Database, op, query string, args ...any) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, &domain.PersistenceError{Op: op, Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, &domain.PersistenceError{Op: op, Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, &domain.PersistenceError{Op: op, Err: err}
	}
	return tag.RowsAffected(), nil
}

// insertInTx ejecuta un INSERT ... RETURNING id dentro de una transacción y
// devuelve la PK generada.
func insertInTx(ctx context.Context, db Database, op, query string, args ...any) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, &domain.PersistenceError{Op: op, Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, &domain.PersistenceError{Op: op, Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, &domain.PersistenceError{Op: op, Err: err}
	}
	return id, nil
}
