package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

const minDepartmentNameLen = 3

// DepartmentUseCase aplica reglas de negocio para departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso con el puerto de persistencia.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create valida nombre (mínimo 3 caracteres tras trim) y tipo, y persiste.
// Devuelve la entidad con la PK asignada.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.DepartmentInput) (*entity.Department, error) {
	dep, err := buildDepartment(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.Create(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

// GetByID obtiene un departamento por ID.
func (uc *DepartmentUseCase) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id de departamento inválido")
	}
	return uc.repo.GetByID(ctx, id)
}

// List devuelve todos los departamentos.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]entity.Department, error) {
	return uc.repo.List(ctx)
}

// SearchByName busca por subcadena de nombre, sin distinguir mayúsculas.
func (uc *DepartmentUseCase) SearchByName(ctx context.Context, name string) ([]entity.Department, error) {
	return uc.repo.SearchByName(ctx, strings.TrimSpace(name))
}

// Update aplica la misma validación que Create. Si la validación falla, el
// gateway no se toca y la fila almacenada queda intacta.
func (uc *DepartmentUseCase) Update(ctx context.Context, id int64, in dto.DepartmentInput) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de departamento inválido")
	}
	dep, err := buildDepartment(in)
	if err != nil {
		return 0, err
	}
	dep.ID = id
	return uc.repo.Update(ctx, dep)
}

// Delete elimina físicamente por ID. Devuelve filas afectadas (0 o 1).
func (uc *DepartmentUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de departamento inválido")
	}
	return uc.repo.Delete(ctx, id)
}

func buildDepartment(in dto.DepartmentInput) (*entity.Department, error) {
	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < minDepartmentNameLen {
		return nil, domain.NewValidationError(
			"el nombre debe tener al menos %d caracteres", minDepartmentNameLen)
	}
	depType, err := entity.ParseDepartmentType(in.Type)
	if err != nil {
		return nil, err
	}
	return &entity.Department{Name: name, Type: depType}, nil
}
