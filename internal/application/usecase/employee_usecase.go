package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/application/validator"
	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

// EmployeeUseCase aplica reglas de negocio para empleados: normaliza la
// entrada cruda de presentación, construye la entidad y delega al gateway.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create valida y normaliza la entrada, construye el empleado con ID cero y
// lo persiste. Devuelve la entidad con la PK asignada por la base de datos.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeInput) (*entity.Employee, error) {
	emp, err := buildEmployee(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// GetByID obtiene un empleado. ID no positivo → ValidationError;
// ID sin fila → NotFoundError del gateway.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id de empleado inválido")
	}
	return uc.repo.GetByID(ctx, id)
}

// List devuelve todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]entity.Employee, error) {
	return uc.repo.List(ctx)
}

// SearchByName busca por subcadena de nombre, sin distinguir mayúsculas.
func (uc *EmployeeUseCase) SearchByName(ctx context.Context, name string) ([]entity.Employee, error) {
	return uc.repo.SearchByName(ctx, strings.TrimSpace(name))
}

// Update aplica la misma validación que Create sobre un ID existente.
// Devuelve filas afectadas para distinguir "actualizado" de "sin fila".
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeInput) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de empleado inválido")
	}
	emp, err := buildEmployee(in)
	if err != nil {
		return 0, err
	}
	emp.ID = id
	return uc.repo.Update(ctx, emp)
}

// Delete elimina físicamente por ID. Devuelve filas afectadas; borrar dos
// veces el mismo ID da 0 la segunda vez, no error.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de empleado inválido")
	}
	return uc.repo.Delete(ctx, id)
}

// buildEmployee normaliza y valida la entrada cruda, y construye la entidad
// con ID cero (la PK la asigna la base de datos al insertar).
func buildEmployee(in dto.EmployeeInput) (*entity.Employee, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)
	typeStr := strings.TrimSpace(in.Type)

	if name == "" || address == "" || email == "" || username == "" || typeStr == "" {
		return nil, domain.NewValidationError(
			"campos obligatorios: nombre, dirección, correo, usuario y tipo de empleado")
	}

	empType, err := entity.ParseEmployeeType(typeStr)
	if err != nil {
		return nil, err
	}
	start, err := validator.ParseDate(in.ContractStart)
	if err != nil {
		return nil, err
	}
	salary, err := decimal.NewFromString(strings.TrimSpace(in.Salary))
	if err != nil {
		return nil, domain.NewValidationError("salario inválido: debe ser un número")
	}
	if salary.IsNegative() {
		return nil, domain.NewValidationError("el salario no puede ser negativo")
	}

	return &entity.Employee{
		Name:          name,
		Address:       address,
		Phone:         strings.TrimSpace(in.Phone),
		Email:         email,
		ContractStart: start,
		Salary:        salary,
		Username:      username,
		Type:          empType,
	}, nil
}
