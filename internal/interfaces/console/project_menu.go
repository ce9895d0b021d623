package console

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func (c *Console) projectMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Proyectos ---\n")
		c.printf("1. Crear\n2. Listar\n3. Buscar por nombre\n4. Ver por ID\n5. Editar\n6. Eliminar\n7. Asignar empleado\n8. Quitar empleado\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			in, err := c.readProjectInput()
			if err != nil {
				return err
			}
			p, err := c.projects.Create(ctx, in)
			if err != nil {
				c.reportError("project.create", err)
				continue
			}
			c.printf("Proyecto creado con ID %d.\n", p.ID)
		case "2":
			list, err := c.projects.List(ctx)
			if err != nil {
				c.reportError("project.list", err)
				continue
			}
			c.printProjects(list)
		case "3":
			name, err := c.prompt("Nombre a buscar: ")
			if err != nil {
				return err
			}
			list, err := c.projects.SearchByName(ctx, name)
			if err != nil {
				c.reportError("project.search", err)
				continue
			}
			c.printProjects(list)
		case "4":
			id, err := c.promptInt64("ID: ")
			if err != nil {
				return err
			}
			p, err := c.projects.GetByID(ctx, id)
			if err != nil {
				c.reportError("project.get", err)
				continue
			}
			c.printProjectDetail(p)
		case "5":
			id, err := c.promptInt64("ID a editar: ")
			if err != nil {
				return err
			}
			in, err := c.readProjectInput()
			if err != nil {
				return err
			}
			n, err := c.projects.Update(ctx, id, in)
			if err != nil {
				c.reportError("project.update", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un proyecto con ese ID.\n")
			} else {
				c.printf("Proyecto actualizado.\n")
			}
		case "6":
			id, err := c.promptInt64("ID a eliminar: ")
			if err != nil {
				return err
			}
			n, err := c.projects.Delete(ctx, id)
			if err != nil {
				c.reportError("project.delete", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un proyecto con ese ID.\n")
			} else {
				c.printf("Proyecto eliminado.\n")
			}
		case "7":
			projectID, err := c.promptInt64("ID del proyecto: ")
			if err != nil {
				return err
			}
			employeeID, err := c.promptInt64("ID del empleado: ")
			if err != nil {
				return err
			}
			added, err := c.projects.AssignEmployee(ctx, projectID, employeeID)
			if err != nil {
				c.reportError("project.assign", err)
				continue
			}
			if added {
				c.printf("Empleado asignado al proyecto.\n")
			} else {
				c.printf("El empleado ya estaba asignado.\n")
			}
		case "8":
			projectID, err := c.promptInt64("ID del proyecto: ")
			if err != nil {
				return err
			}
			employeeID, err := c.promptInt64("ID del empleado: ")
			if err != nil {
				return err
			}
			removed, err := c.projects.UnassignEmployee(ctx, projectID, employeeID)
			if err != nil {
				c.reportError("project.unassign", err)
				continue
			}
			if removed {
				c.printf("Empleado quitado del proyecto.\n")
			} else {
				c.printf("El empleado no estaba asignado.\n")
			}
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

func (c *Console) readProjectInput() (dto.ProjectInput, error) {
	var in dto.ProjectInput
	var err error
	if in.Name, err = c.prompt("Nombre: "); err != nil {
		return in, err
	}
	if in.Description, err = c.prompt("Descripción: "); err != nil {
		return in, err
	}
	if in.StartDate, err = c.prompt("Fecha de inicio (AAAA-MM-DD): "); err != nil {
		return in, err
	}
	return in, nil
}

func (c *Console) printProjects(list []entity.Project) {
	if len(list) == 0 {
		c.printf("Sin resultados.\n")
		return
	}
	for _, p := range list {
		c.printf("[%d] %s (%s) - %d asignados\n", p.ID, p.Name, formatDate(p.StartDate), len(p.Assigned))
	}
	c.printf("Total: %d\n", len(list))
}

func (c *Console) printProjectDetail(p *entity.Project) {
	c.printf("ID:          %d\n", p.ID)
	c.printf("Nombre:      %s\n", p.Name)
	c.printf("Descripción: %s\n", p.Description)
	c.printf("Inicio:      %s\n", formatDate(p.StartDate))
	if len(p.Assigned) == 0 {
		c.printf("Equipo:      (sin asignaciones)\n")
		return
	}
	c.printf("Equipo:\n")
	for _, e := range p.Assigned {
		c.printf("  [%d] %s - %s\n", e.ID, e.Name, e.Type)
	}
}
