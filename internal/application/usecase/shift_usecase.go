package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/application/validator"
	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

// ShiftUseCase registra jornadas trabajadas. Cada registro referencia a un
// empleado existente; el alta verifica la FK antes de insertar para dar un
// error de dominio en vez de una violación de integridad.
type ShiftUseCase struct {
	shifts    repository.ShiftRepository
	employees repository.EmployeeRepository
}

// NewShiftUseCase construye el caso de uso con ambos puertos.
func NewShiftUseCase(shifts repository.ShiftRepository, employees repository.EmployeeRepository) *ShiftUseCase {
	return &ShiftUseCase{shifts: shifts, employees: employees}
}

// Create valida la entrada, comprueba que el empleado exista y persiste el
// registro de turno.
func (uc *ShiftUseCase) Create(ctx context.Context, in dto.ShiftInput) (*entity.ShiftRecord, error) {
	rec, err := uc.buildShift(ctx, in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.shifts.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByID obtiene un registro de turno por ID.
func (uc *ShiftUseCase) GetByID(ctx context.Context, id int64) (*entity.ShiftRecord, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id de registro inválido")
	}
	return uc.shifts.GetByID(ctx, id)
}

// List devuelve todos los registros de turno.
func (uc *ShiftUseCase) List(ctx context.Context) ([]entity.ShiftRecord, error) {
	return uc.shifts.List(ctx)
}

// ListByEmployee devuelve los turnos de un empleado concreto.
func (uc *ShiftUseCase) ListByEmployee(ctx context.Context, employeeID int64) ([]entity.ShiftRecord, error) {
	if employeeID <= 0 {
		return nil, domain.NewValidationError("id de empleado inválido")
	}
	return uc.shifts.ListByEmployee(ctx, employeeID)
}

// Update aplica la misma validación que Create sobre un registro existente.
func (uc *ShiftUseCase) Update(ctx context.Context, id int64, in dto.ShiftInput) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de registro inválido")
	}
	rec, err := uc.buildShift(ctx, in)
	if err != nil {
		return 0, err
	}
	rec.ID = id
	return uc.shifts.Update(ctx, rec)
}

// Delete elimina un registro de turno por ID.
func (uc *ShiftUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de registro inválido")
	}
	return uc.shifts.Delete(ctx, id)
}

func (uc *ShiftUseCase) buildShift(ctx context.Context, in dto.ShiftInput) (*entity.ShiftRecord, error) {
	if in.EmployeeID <= 0 {
		return nil, domain.NewValidationError("id de empleado inválido")
	}
	if in.Hours <= 0 {
		return nil, domain.NewValidationError("las horas trabajadas deben ser mayores que cero")
	}
	date, err := validator.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	// La FK se comprueba aquí para devolver NotFoundError de empleado en vez
	// de un error de integridad referencial del driver.
	if _, err := uc.employees.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}
	return &entity.ShiftRecord{
		EmployeeID: in.EmployeeID,
		Date:       date,
		Hours:      in.Hours,
		Tasks:      strings.TrimSpace(in.Tasks),
	}, nil
}
