package repository

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(ctx context.Context, dep *entity.Department) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Department, error)
	List(ctx context.Context) ([]entity.Department, error)
	SearchByName(ctx context.Context, name string) ([]entity.Department, error)
	Update(ctx context.Context, dep *entity.Department) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
