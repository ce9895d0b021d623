package console

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func (c *Console) shiftMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Turnos ---\n")
		c.printf("1. Registrar\n2. Listar todos\n3. Listar por empleado\n4. Ver por ID\n5. Editar\n6. Eliminar\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			in, err := c.readShiftInput()
			if err != nil {
				return err
			}
			rec, err := c.shifts.Create(ctx, in)
			if err != nil {
				c.reportError("shift.create", err)
				continue
			}
			c.printf("Turno registrado con ID %d.\n", rec.ID)
		case "2":
			list, err := c.shifts.List(ctx)
			if err != nil {
				c.reportError("shift.list", err)
				continue
			}
			c.printShifts(list)
		case "3":
			employeeID, err := c.promptInt64("ID del empleado: ")
			if err != nil {
				return err
			}
			list, err := c.shifts.ListByEmployee(ctx, employeeID)
			if err != nil {
				c.reportError("shift.listByEmployee", err)
				continue
			}
			c.printShifts(list)
		case "4":
			id, err := c.promptInt64("ID: ")
			if err != nil {
				return err
			}
			rec, err := c.shifts.GetByID(ctx, id)
			if err != nil {
				c.reportError("shift.get", err)
				continue
			}
			c.printf("[%d] empleado %d - %s - %dh - %s\n",
				rec.ID, rec.EmployeeID, formatDate(rec.Date), rec.Hours, rec.Tasks)
		case "5":
			id, err := c.promptInt64("ID a editar: ")
			if err != nil {
				return err
			}
			in, err := c.readShiftInput()
			if err != nil {
				return err
			}
			n, err := c.shifts.Update(ctx, id, in)
			if err != nil {
				c.reportError("shift.update", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un turno con ese ID.\n")
			} else {
				c.printf("Turno actualizado.\n")
			}
		case "6":
			id, err := c.promptInt64("ID a eliminar: ")
			if err != nil {
				return err
			}
			n, err := c.shifts.Delete(ctx, id)
			if err != nil {
				c.reportError("shift.delete", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un turno con ese ID.\n")
			} else {
				c.printf("Turno eliminado.\n")
			}
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

func (c *Console) readShiftInput() (dto.ShiftInput, error) {
	var in dto.ShiftInput
	var err error
	if in.EmployeeID, err = c.promptInt64("ID del empleado: "); err != nil {
		return in, err
	}
	if in.Date, err = c.prompt("Fecha (AAAA-MM-DD [HH:MM:SS]): "); err != nil {
		return in, err
	}
	if in.Hours, err = c.promptInt("Horas trabajadas: "); err != nil {
		return in, err
	}
	if in.Tasks, err = c.prompt("Tareas realizadas: "); err != nil {
		return in, err
	}
	return in, nil
}

func (c *Console) printShifts(list []entity.ShiftRecord) {
	if len(list) == 0 {
		c.printf("Sin resultados.\n")
		return
	}
	for _, r := range list {
		c.printf("[%d] empleado %d - %s - %dh - %s\n",
			r.ID, r.EmployeeID, formatDate(r.Date), r.Hours, r.Tasks)
	}
	c.printf("Total: %d\n", len(list))
}
