package repository

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para ShiftRecord.
type ShiftRepository interface {
	Create(ctx context.Context, rec *entity.ShiftRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.ShiftRecord, error)
	List(ctx context.Context) ([]entity.ShiftRecord, error)
	// ListByEmployee devuelve los turnos de un empleado, lista vacía si no tiene.
	ListByEmployee(ctx context.Context, employeeID int64) ([]entity.ShiftRecord, error)
	Update(ctx context.Context, rec *entity.ShiftRecord) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
