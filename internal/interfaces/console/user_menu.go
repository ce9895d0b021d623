package console

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func (c *Console) userMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Usuarios ---\n")
		c.printf("1. Crear\n2. Listar\n3. Ver por ID\n4. Editar\n5. Eliminar\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			var in dto.UserInput
			if in.Username, err = c.prompt("Usuario: "); err != nil {
				return err
			}
			if in.Password, err = c.prompt("Contraseña: "); err != nil {
				return err
			}
			if in.FullName, err = c.prompt("Nombre completo: "); err != nil {
				return err
			}
			if in.Role, err = c.prompt("Rol (admin/usuario, vacío=usuario): "); err != nil {
				return err
			}
			u, err := c.users.Create(ctx, in)
			if err != nil {
				c.reportError("user.create", err)
				continue
			}
			c.printf("Usuario creado con ID %d.\n", u.ID)
		case "2":
			list, err := c.users.List(ctx)
			if err != nil {
				c.reportError("user.list", err)
				continue
			}
			c.printUsers(list)
		case "3":
			id, err := c.promptInt64("ID: ")
			if err != nil {
				return err
			}
			u, err := c.users.GetByID(ctx, id)
			if err != nil {
				c.reportError("user.get", err)
				continue
			}
			c.printf("%s\n", u)
		case "4":
			id, err := c.promptInt64("ID a editar: ")
			if err != nil {
				return err
			}
			var in dto.UserUpdateInput
			if in.Username, err = c.prompt("Usuario (vacío=sin cambio): "); err != nil {
				return err
			}
			if in.Password, err = c.prompt("Contraseña (vacío=sin cambio): "); err != nil {
				return err
			}
			if in.FullName, err = c.prompt("Nombre completo (vacío=sin cambio): "); err != nil {
				return err
			}
			if in.Role, err = c.prompt("Rol (vacío=sin cambio): "); err != nil {
				return err
			}
			activeStr, err := c.prompt("¿Activo? (s/n): ")
			if err != nil {
				return err
			}
			in.Active = activeStr == "s" || activeStr == "S"
			n, err := c.users.Update(ctx, id, in)
			if err != nil {
				c.reportError("user.update", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un usuario con ese ID.\n")
			} else {
				c.printf("Usuario actualizado.\n")
			}
		case "5":
			id, err := c.promptInt64("ID a eliminar: ")
			if err != nil {
				return err
			}
			n, err := c.users.Delete(ctx, id)
			if err != nil {
				c.reportError("user.delete", err)
				continue
			}
			if n == 0 {
				c.printf("No existe un usuario con ese ID.\n")
			} else {
				c.printf("Usuario eliminado.\n")
			}
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

func (c *Console) printUsers(list []entity.User) {
	if len(list) == 0 {
		c.printf("Sin resultados.\n")
		return
	}
	for _, u := range list {
		c.printf("%s\n", u)
	}
	c.printf("Total: %d\n", len(list))
}
