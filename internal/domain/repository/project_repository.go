package repository

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
// Solo la fila del proyecto se persiste; la lista de empleados asignados
// vive en memoria (ver entity.Project).
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context) ([]entity.Project, error)
	SearchByName(ctx context.Context, name string) ([]entity.Project, error)
	Update(ctx context.Context, p *entity.Project) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
