package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/rrhh-console/internal/application/auth"
	"github.com/jhoicas/rrhh-console/internal/application/report"
	"github.com/jhoicas/rrhh-console/internal/application/usecase"
	"github.com/jhoicas/rrhh-console/internal/infrastructure/postgres"
	"github.com/jhoicas/rrhh-console/internal/infrastructure/restcountries"
	"github.com/jhoicas/rrhh-console/internal/interfaces/console"
	"github.com/jhoicas/rrhh-console/pkg/config"
	"github.com/jhoicas/rrhh-console/pkg/logger"
	"github.com/jhoicas/rrhh-console/pkg/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	}).WithSession()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Ctrl+C cierra la sesión de consola ordenadamente.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	hasher := security.NewHasher(cfg.Security.BcryptCost)

	ui := console.New(os.Stdin, os.Stdout, console.Deps{
		Auth:        auth.NewService(userRepo, hasher),
		Employees:   usecase.NewEmployeeUseCase(employeeRepo),
		Departments: usecase.NewDepartmentUseCase(departmentRepo),
		Projects:    usecase.NewProjectUseCase(projectRepo, employeeRepo),
		Shifts:      usecase.NewShiftUseCase(shiftRepo, employeeRepo),
		Users:       usecase.NewUserUseCase(userRepo, hasher),
		Countries:   restcountries.NewClient(cfg.Countries.BaseURL, cfg.Countries.Timeout),
		Exporter:    report.NewExporter(),
		Logger:      log,
	})

	if err := ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sesión de consola terminada con error")
	}
	log.Info().Msg("aplicación finalizada")
}
