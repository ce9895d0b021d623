package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
// Solo persiste la fila del proyecto; la relación proyecto↔empleados es una
// lista en memoria que no toca la base de datos.
type ProjectRepo struct {
	db Database
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(db Database) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create persiste un nuevo proyecto y asigna la PK generada.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) (int64, error) {
	query := `
		INSERT INTO project (name, description, start_date)
		VALUES ($1, $2, $3)
		RETURNING id`
	id, err := insertInTx(ctx, r.db, "insertar proyecto", query, p.Name, p.Description, p.StartDate)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// GetByID obtiene un proyecto por ID. Sin fila → NotFoundError.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	query := `SELECT id, name, description, start_date FROM project WHERE id = $1`
	var p entity.Project
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.StartDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "proyecto"}
		}
		return nil, &domain.PersistenceError{Op: "obtener proyecto por id", Err: err}
	}
	return &p, nil
}

// List devuelve todos los proyectos ordenados por nombre.
func (r *ProjectRepo) List(ctx context.Context) ([]entity.Project, error) {
	query := `SELECT id, name, description, start_date FROM project ORDER BY name`
	return r.queryMany(ctx, "listar proyectos", query)
}

// SearchByName busca por subcadena de nombre, sin distinguir mayúsculas.
func (r *ProjectRepo) SearchByName(ctx context.Context, name string) ([]entity.Project, error) {
	query := `SELECT id, name, description, start_date FROM project WHERE name ILIKE $1 ORDER BY name`
	return r.queryMany(ctx, "buscar proyectos por nombre", query, "%"+name+"%")
}

// Update actualiza nombre, descripción y fecha de inicio. Devuelve filas afectadas.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) (int64, error) {
	query := `UPDATE project SET name = $2, description = $3, start_date = $4 WHERE id = $1`
	return execInTx(ctx, r.db, "actualizar proyecto", query, p.ID, p.Name, p.Description, p.StartDate)
}

// Delete elimina físicamente un proyecto por ID. Devuelve filas afectadas.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return execInTx(ctx, r.db, "eliminar proyecto", `DELETE FROM project WHERE id = $1`, id)
}

func (r *ProjectRepo) queryMany(ctx context.Context, op, query string, args ...any) ([]entity.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	defer rows.Close()

	list := make([]entity.Project, 0)
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate); err != nil {
			return nil, &domain.PersistenceError{Op: op, Err: err}
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	return list, nil
}
