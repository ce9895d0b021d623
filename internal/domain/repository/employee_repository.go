package repository

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	// Create inserta y devuelve el ID generado por la base de datos.
	Create(ctx context.Context, emp *entity.Employee) (int64, error)
	// GetByID devuelve NotFoundError si el ID no tiene fila.
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	List(ctx context.Context) ([]entity.Employee, error)
	// SearchByName busca por subcadena de nombre, sin distinguir mayúsculas.
	// Cero coincidencias devuelve lista vacía, no error.
	SearchByName(ctx context.Context, name string) ([]entity.Employee, error)
	// Update devuelve filas afectadas (0 si el ID no existía).
	Update(ctx context.Context, emp *entity.Employee) (int64, error)
	// Delete es eliminación física; devuelve filas afectadas (0 o 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
