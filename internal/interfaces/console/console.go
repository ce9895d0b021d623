// Package console implementa la interfaz de texto del sistema: login con
// tres intentos y menús por entidad, con acceso recortado según el rol del
// usuario autenticado.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/rrhh-console/internal/application/auth"
	"github.com/jhoicas/rrhh-console/internal/application/report"
	"github.com/jhoicas/rrhh-console/internal/application/usecase"
	"github.com/jhoicas/rrhh-console/internal/application/validator"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/infrastructure/restcountries"
	"github.com/jhoicas/rrhh-console/pkg/logger"
)

const maxLoginAttempts = 3

// Console agrupa los casos de uso y el estado de la sesión interactiva.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	auth        *auth.Service
	employees   *usecase.EmployeeUseCase
	departments *usecase.DepartmentUseCase
	projects    *usecase.ProjectUseCase
	shifts      *usecase.ShiftUseCase
	users       *usecase.UserUseCase
	countries   *restcountries.Client
	exporter    *report.Exporter
	log         *logger.Logger

	// usuario autenticado de la sesión actual
	current *entity.User
}

// Deps son las dependencias cableadas desde main.
type Deps struct {
	Auth        *auth.Service
	Employees   *usecase.EmployeeUseCase
	Departments *usecase.DepartmentUseCase
	Projects    *usecase.ProjectUseCase
	Shifts      *usecase.ShiftUseCase
	Users       *usecase.UserUseCase
	Countries   *restcountries.Client
	Exporter    *report.Exporter
	Logger      *logger.Logger
}

// New construye la consola leyendo de in y escribiendo en out.
func New(in io.Reader, out io.Writer, d Deps) *Console {
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		auth:        d.Auth,
		employees:   d.Employees,
		departments: d.Departments,
		projects:    d.Projects,
		shifts:      d.Shifts,
		users:       d.Users,
		countries:   d.Countries,
		exporter:    d.Exporter,
		log:         d.Logger,
	}
}

// Run ejecuta el login y, si tiene éxito, el menú principal hasta que el
// usuario salga o la entrada se agote.
func (c *Console) Run(ctx context.Context) error {
	u, err := c.login(ctx)
	if err != nil {
		if errors.Is(err, errEOF) {
			return nil
		}
		return err
	}
	if u == nil {
		c.printf("Demasiados intentos fallidos. Sesión terminada.\n")
		return nil
	}
	c.current = u
	c.log.Info().Str("username", u.Username).Str("role", u.Role).Msg("sesión iniciada")
	c.printf("\nBienvenido, %s (%s)\n", u.FullName, u.Role)

	if err := c.mainMenu(ctx); err != nil && !errors.Is(err, errEOF) {
		return err
	}
	return nil
}

// login pide credenciales hasta maxLoginAttempts veces. Devuelve (nil, nil)
// si se agotan los intentos; error solo por fallo de infraestructura o fin
// de entrada.
func (c *Console) login(ctx context.Context) (*entity.User, error) {
	c.printf("=== Sistema de Gestión de RRHH ===\n")
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, err := c.prompt("Usuario: ")
		if err != nil {
			return nil, err
		}
		password, err := c.prompt("Contraseña: ")
		if err != nil {
			return nil, err
		}
		if err := validator.LoginInput(username, password); err != nil {
			c.printf("Error: %v (%d/%d)\n", err, attempt, maxLoginAttempts)
			continue
		}

		u, err := c.auth.Login(ctx, username, password)
		switch {
		case err == nil:
			return u, nil
		case errors.Is(err, auth.ErrUserNotFoundOrInactive),
			errors.Is(err, auth.ErrIncorrectPassword):
			c.log.Warn().Str("username", username).Int("attempt", attempt).Msg("login fallido")
			c.printf("Error: %v (%d/%d)\n", err, attempt, maxLoginAttempts)
		default:
			return nil, err
		}
	}
	return nil, nil
}

// mainMenu despacha a los submenús. El rol "usuario" solo accede a la
// consulta de países; "admin" a todo.
func (c *Console) mainMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Menú principal ---\n")
		if c.current.IsAdmin() {
			c.printf("1. Empleados\n2. Departamentos\n3. Proyectos\n4. Turnos\n5. Usuarios\n6. Países\n7. Informes\n0. Salir\n")
		} else {
			c.printf("6. Países\n0. Salir\n")
		}
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}

		if !c.current.IsAdmin() && opt != "6" && opt != "0" {
			c.printf("Opción no permitida para su rol.\n")
			continue
		}

		switch opt {
		case "1":
			if err := c.employeeMenu(ctx); err != nil {
				return err
			}
		case "2":
			if err := c.departmentMenu(ctx); err != nil {
				return err
			}
		case "3":
			if err := c.projectMenu(ctx); err != nil {
				return err
			}
		case "4":
			if err := c.shiftMenu(ctx); err != nil {
				return err
			}
		case "5":
			if err := c.userMenu(ctx); err != nil {
				return err
			}
		case "6":
			if err := c.countryMenu(ctx); err != nil {
				return err
			}
		case "7":
			if err := c.reportMenu(ctx); err != nil {
				return err
			}
		case "0":
			c.printf("Hasta pronto.\n")
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

// reportError imprime el error de una operación sin abortar el menú.
func (c *Console) reportError(op string, err error) {
	c.log.Error().Err(err).Str("op", op).Msg("operación fallida")
	c.printf("Error: %v\n", err)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
