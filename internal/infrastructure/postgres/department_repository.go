package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	db Database
}

// NewDepartmentRepository construye el adaptador de persistencia para departamentos.
func NewDepartmentRepository(db Database) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

// Create persiste un nuevo departamento y asigna la PK generada.
func (r *DepartmentRepo) Create(ctx context.Context, dep *entity.Department) (int64, error) {
	query := `
		INSERT INTO department (name, department_type)
		VALUES ($1, $2)
		RETURNING id`
	id, err := insertInTx(ctx, r.db, "insertar departamento", query, dep.Name, string(dep.Type))
	if err != nil {
		return 0, err
	}
	dep.ID = id
	return id, nil
}

// GetByID obtiene un departamento por ID. Sin fila → NotFoundError.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	query := `SELECT id, name, department_type FROM department WHERE id = $1`
	dep, err := scanDepartment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "departamento"}
		}
		return nil, &domain.PersistenceError{Op: "obtener departamento por id", Err: err}
	}
	return &dep, nil
}

// List devuelve todos los departamentos ordenados por nombre.
func (r *DepartmentRepo) List(ctx context.Context) ([]entity.Department, error) {
	query := `SELECT id, name, department_type FROM department ORDER BY name`
	return r.queryMany(ctx, "listar departamentos", query)
}

// SearchByName busca por subcadena de nombre, sin distinguir mayúsculas.
func (r *DepartmentRepo) SearchByName(ctx context.Context, name string) ([]entity.Department, error) {
	query := `SELECT id, name, department_type FROM department WHERE name ILIKE $1 ORDER BY name`
	return r.queryMany(ctx, "buscar departamentos por nombre", query, "%"+name+"%")
}

// Update actualiza nombre y tipo. Devuelve filas afectadas.
func (r *DepartmentRepo) Update(ctx context.Context, dep *entity.Department) (int64, error) {
	query := `UPDATE department SET name = $2, department_type = $3 WHERE id = $1`
	return execInTx(ctx, r.db, "actualizar departamento", query, dep.ID, dep.Name, string(dep.Type))
}

// Delete elimina físicamente un departamento por ID. Devuelve filas afectadas.
func (r *DepartmentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return execInTx(ctx, r.db, "eliminar departamento", `DELETE FROM department WHERE id = $1`, id)
}

func (r *DepartmentRepo) queryMany(ctx context.Context, op, query string, args ...any) ([]entity.Department, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	defer rows.Close()

	list := make([]entity.Department, 0)
	for rows.Next() {
		dep, err := scanDepartment(rows)
		if err != nil {
			return nil, &domain.PersistenceError{Op: op, Err: err}
		}
		list = append(list, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	return list, nil
}

func scanDepartment(s interface{ Scan(dest ...any) error }) (entity.Department, error) {
	var dep entity.Department
	var typ string
	if err := s.Scan(&dep.ID, &dep.Name, &typ); err != nil {
		return entity.Department{}, err
	}
	dep.Type = entity.DepartmentType(typ)
	return dep, nil
}
