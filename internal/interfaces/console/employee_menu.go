package console

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func (c *Console) employeeMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Empleados ---\n")
		c.printf("1. Crear\n2. Listar\n3. Buscar por nombre\n4. Ver por ID\n5. Editar\n6. Eliminar\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			if err := c.createEmployee(ctx); err != nil {
				return err
			}
		case "2":
			list, err := c.employees.List(ctx)
			if err != nil {
				c.reportError("employee.list", err)
				continue
			}
			c.printEmployees(list)
		case "3":
			name, err := c.prompt("Nombre a buscar: ")
			if err != nil {
				return err
			}
			list, err := c.employees.SearchByName(ctx, name)
			if err != nil {
				c.reportError("employee.search", err)
				continue
			}
			c.printEmployees(list)
		case "4":
			id, err := c.promptInt64("ID: ")
			if err != nil {
				return err
			}
			emp, err := c.employees.GetByID(ctx, id)
			if err != nil {
				c.reportError("employee.get", err)
				continue
			}
			c.printEmployeeDetail(emp)
		case "5":
			if err := c.updateEmployee(ctx); err != nil {
				return err
			}
		case "6":
			id, err := c.promptInt64("ID a eliminar: ")
			if err != nil {
				return err
			}
			n, err := c.employees.Delete(ctx, id)
			if err != nil {
				c.reportError("employee.delete", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un empleado con ese ID.\n")
			} else {
				c.printf("Empleado eliminado.\n")
			}
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

func (c *Console) createEmployee(ctx context.Context) error {
	in, err := c.readEmployeeInput()
	if err != nil {
		return err
	}
	emp, err := c.employees.Create(ctx, in)
	if err != nil {
		c.reportError("employee.create", err)
		return nil
	}
	c.printf("Empleado creado con ID %d.\n", emp.ID)
	return nil
}

func (c *Console) updateEmployee(ctx context.Context) error {
	id, err := c.promptInt64("ID a editar: ")
	if err != nil {
		return err
	}
	in, err := c.readEmployeeInput()
	if err != nil {
		return err
	}
	n, err := c.employees.Update(ctx, id, in)
	if err != nil {
		c.reportError("employee.update", err)
		return nil
	}
	if n == 0 {
		c.printf("No existe un empleado con ese ID.\n")
	} else {
		c.printf("Empleado actualizado.\n")
	}
	return nil
}

func (c *Console) readEmployeeInput() (dto.EmployeeInput, error) {
	var in dto.EmployeeInput
	var err error
	if in.Name, err = c.prompt("Nombre: "); err != nil {
		return in, err
	}
	if in.Address, err = c.prompt("Dirección: "); err != nil {
		return in, err
	}
	if in.Phone, err = c.prompt("Teléfono: "); err != nil {
		return in, err
	}
	if in.Email, err = c.prompt("Correo: "); err != nil {
		return in, err
	}
	if in.ContractStart, err = c.prompt("Inicio de contrato (AAAA-MM-DD): "); err != nil {
		return in, err
	}
	if in.Salary, err = c.prompt("Salario: "); err != nil {
		return in, err
	}
	if in.Username, err = c.prompt("Usuario: "); err != nil {
		return in, err
	}
	if in.Type, err = c.prompt("Tipo (Empleado/Administrativo/Gerente): "); err != nil {
		return in, err
	}
	return in, nil
}

func (c *Console) printEmployees(list []entity.Employee) {
	if len(list) == 0 {
		c.printf("Sin resultados.\n")
		return
	}
	for _, e := range list {
		c.printf("[%d] %s - %s - %s\n", e.ID, e.Name, e.Type, e.Email)
	}
	c.printf("Total: %d\n", len(list))
}

func (c *Console) printEmployeeDetail(e *entity.Employee) {
	c.printf("ID:        %d\n", e.ID)
	c.printf("Nombre:    %s\n", e.Name)
	c.printf("Dirección: %s\n", e.Address)
	c.printf("Teléfono:  %s\n", e.Phone)
	c.printf("Correo:    %s\n", e.Email)
	c.printf("Ingreso:   %s\n", formatDate(e.ContractStart))
	c.printf("Salario:   %s\n", e.Salary.StringFixed(2))
	c.printf("Usuario:   %s\n", e.Username)
	c.printf("Tipo:      %s\n", e.Type)
}
