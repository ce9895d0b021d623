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

const minProjectNameLen = 3

// ProjectUseCase gestiona proyectos y su equipo asignado. Los datos del
// proyecto viven en la base de datos; las asignaciones de empleados son
// estado en memoria de la sesión y no sobreviven al reinicio.
type ProjectUseCase struct {
	projects  repository.ProjectRepository
	employees repository.EmployeeRepository

	// asignaciones por proyecto, solo de esta sesión de consola
	assignments map[int64][]entity.Employee
}

// NewProjectUseCase construye el caso de uso con ambos puertos.
func NewProjectUseCase(projects repository.ProjectRepository, employees repository.EmployeeRepository) *ProjectUseCase {
	return &ProjectUseCase{
		projects:    projects,
		employees:   employees,
		assignments: make(map[int64][]entity.Employee),
	}
}

// Create valida nombre y fecha de inicio, y persiste el proyecto.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.ProjectInput) (*entity.Project, error) {
	p, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID obtiene un proyecto con su equipo asignado en esta sesión.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id de proyecto inválido")
	}
	p, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Assigned = append([]entity.Employee(nil), uc.assignments[id]...)
	return p, nil
}

// List devuelve todos los proyectos con sus asignaciones de sesión.
func (uc *ProjectUseCase) List(ctx context.Context) ([]entity.Project, error) {
	ps, err := uc.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ps {
		ps[i].Assigned = append([]entity.Employee(nil), uc.assignments[ps[i].ID]...)
	}
	return ps, nil
}

// SearchByName busca por subcadena de nombre, sin distinguir mayúsculas.
func (uc *ProjectUseCase) SearchByName(ctx context.Context, name string) ([]entity.Project, error) {
	return uc.projects.SearchByName(ctx, strings.TrimSpace(name))
}

// Update aplica la misma validación que Create sobre un proyecto existente.
// Las asignaciones de sesión no se tocan.
func (uc *ProjectUseCase) Update(ctx context.Context, id int64, in dto.ProjectInput) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de proyecto inválido")
	}
	p, err := buildProject(in)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return uc.projects.Update(ctx, p)
}

// Delete elimina el proyecto y descarta sus asignaciones de sesión.
func (uc *ProjectUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de proyecto inválido")
	}
	n, err := uc.projects.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	delete(uc.assignments, id)
	return n, nil
}

// AssignEmployee añade un empleado al equipo del proyecto. Es idempotente:
// asignar dos veces al mismo empleado devuelve false la segunda, sin error.
func (uc *ProjectUseCase) AssignEmployee(ctx context.Context, projectID, employeeID int64) (bool, error) {
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		return false, err
	}
	emp, err := uc.employees.GetByID(ctx, employeeID)
	if err != nil {
		return false, err
	}
	for _, e := range uc.assignments[projectID] {
		if e.ID == employeeID {
			return false, nil
		}
	}
	uc.assignments[projectID] = append(uc.assignments[projectID], *emp)
	return true, nil
}

// UnassignEmployee quita un empleado del equipo. Devuelve false si no estaba
// asignado.
func (uc *ProjectUseCase) UnassignEmployee(ctx context.Context, projectID, employeeID int64) (bool, error) {
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		return false, err
	}
	team := uc.assignments[projectID]
	for i, e := range team {
		if e.ID == employeeID {
			uc.assignments[projectID] = append(team[:i], team[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func buildProject(in dto.ProjectInput) (*entity.Project, error) {
	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < minProjectNameLen {
		return nil, domain.NewValidationError(
			"el nombre debe tener al menos %d caracteres", minProjectNameLen)
	}
	start, err := validator.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	return &entity.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		StartDate:   start,
	}, nil
}
