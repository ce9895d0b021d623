package console

import (
	"context"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func (c *Console) departmentMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Departamentos ---\n")
		c.printf("1. Crear\n2. Listar\n3. Buscar por nombre\n4. Ver por ID\n5. Editar\n6. Eliminar\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			in, err := c.readDepartmentInput()
			if err != nil {
				return err
			}
			dep, err := c.departments.Create(ctx, in)
			if err != nil {
				c.reportError("department.create", err)
				continue
			}
			c.printf("Departamento creado con ID %d.\n", dep.ID)
		case "2":
			list, err := c.departments.List(ctx)
			if err != nil {
				c.reportError("department.list", err)
				continue
			}
			c.printDepartments(list)
		case "3":
			name, err := c.prompt("Nombre a buscar: ")
			if err != nil {
				return err
			}
			list, err := c.departments.SearchByName(ctx, name)
			if err != nil {
				c.reportError("department.search", err)
				continue
			}
			c.printDepartments(list)
		case "4":
			id, err := c.promptInt64("ID: ")
			if err != nil {
				return err
			}
			dep, err := c.departments.GetByID(ctx, id)
			if err != nil {
				c.reportError("department.get", err)
				continue
			}
			c.printf("[%d] %s - %s\n", dep.ID, dep.Name, dep.Type)
		case "5":
			id, err := c.promptInt64("ID a editar: ")
			if err != nil {
				return err
			}
			in, err := c.readDepartmentInput()
			if err != nil {
				return err
			}
			n, err := c.departments.Update(ctx, id, in)
			if err != nil {
				c.reportError("department.update", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un departamento con ese ID.\n")
			} else {
				c.printf("Departamento actualizado.\n")
			}
		case "6":
			id, err := c.promptInt64("ID a eliminar: ")
			if err != nil {
				return err
			}
			n, err := c.departments.Delete(ctx, id)
			if err != nil {
				c.reportError("department.delete", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un departamento con ese ID.\n")
			} else {
				c.printf("Departamento eliminado.\n")
			}
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

func (c *Console) readDepartmentInput() (dto.DepartmentInput, error) {
	var in dto.DepartmentInput
	var err error
	if in.Name, err = c.prompt("Nombre: "); err != nil {
		return in, err
	}
	tipos := entity.DepartmentTypeValues()
	labels := make([]string, len(tipos))
	for i, t := range tipos {
		labels[i] = string(t)
	}
	if in.Type, err = c.prompt("Tipo (" + strings.Join(labels, "/") + "): "); err != nil {
		return in, err
	}
	return in, nil
}

func (c *Console) printDepartments(list []entity.Department) {
	if len(list) == 0 {
		c.printf("Sin resultados.\n")
		return
	}
	for _, d := range list {
		c.printf("[%d] %s - %s\n", d.ID, d.Name, d.Type)
	}
	c.printf("Total: %d\n", len(list))
}
