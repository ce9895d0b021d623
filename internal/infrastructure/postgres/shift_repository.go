package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	db Database
}

// NewShiftRepository construye el adaptador de persistencia para registros de turno.
func NewShiftRepository(db Database) *ShiftRepo {
	return &ShiftRepo{db: db}
}

// Create persiste un nuevo registro de turno con sus cuatro campos
// (empleado, fecha, horas, tareas) y asigna la PK generada.
func (r *ShiftRepo) Create(ctx context.Context, rec *entity.ShiftRecord) (int64, error) {
	query := `
		INSERT INTO shift_record (employee_id, shift_date, hours, tasks)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	id, err := insertInTx(ctx, r.db, "insertar registro de turno", query,
		rec.EmployeeID, rec.Date, rec.Hours, rec.Tasks)
	if err != nil {
		return 0, err
	}
	rec.ID = id
	return id, nil
}

// GetByID obtiene un registro de turno por ID. Sin fila → NotFoundError.
func (r *ShiftRepo) GetByID(ctx context.Context, id int64) (*entity.ShiftRecord, error) {
	query := `SELECT id, employee_id, shift_date, hours, tasks FROM shift_record WHERE id = $1`
	var rec entity.ShiftRecord
	err := r.db.QueryRow(ctx, query, id).Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Tasks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "registro de turno"}
		}
		return nil, &domain.PersistenceError{Op: "obtener registro de turno por id", Err: err}
	}
	return &rec, nil
}

// List devuelve todos los registros de turno, más recientes primero.
func (r *ShiftRepo) List(ctx context.Context) ([]entity.ShiftRecord, error) {
	query := `SELECT id, employee_id, shift_date, hours, tasks FROM shift_record ORDER BY shift_date DESC`
	return r.queryMany(ctx, "listar registros de turno", query)
}

// ListByEmployee devuelve los turnos de un empleado; lista vacía si no tiene.
func (r *ShiftRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]entity.ShiftRecord, error) {
	query := `SELECT id, employee_id, shift_date, hours, tasks FROM shift_record WHERE employee_id = $1 ORDER BY shift_date DESC`
	return r.queryMany(ctx, "listar turnos por empleado", query, employeeID)
}

// Update actualiza fecha, horas y tareas de un registro. Devuelve filas afectadas.
func (r *ShiftRepo) Update(ctx context.Context, rec *entity.ShiftRecord) (int64, error) {
	query := `UPDATE shift_record SET shift_date = $2, hours = $3, tasks = $4 WHERE id = $1`
	return execInTx(ctx, r.db, "actualizar registro de turno", query,
		rec.ID, rec.Date, rec.Hours, rec.Tasks)
}

// Delete elimina físicamente un registro de turno. Devuelve filas afectadas.
func (r *ShiftRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return execInTx(ctx, r.db, "eliminar registro de turno", `DELETE FROM shift_record WHERE id = $1`, id)
}

func (r *ShiftRepo) queryMany(ctx context.Context, op, query string, args ...any) ([]entity.ShiftRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	defer rows.Close()

	list := make([]entity.ShiftRecord, 0)
	for rows.Next() {
		var rec entity.ShiftRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Tasks); err != nil {
			return nil, &domain.PersistenceError{Op: op, Err: err}
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	return list, nil
}
