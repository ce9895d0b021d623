package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"

	"github.com/jhoicas/rrhh-console/internal/infrastructure/postgres"
	"github.com/jhoicas/rrhh-console/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatalf("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("aplicar migraciones: %v", err)
	}

	log.Println("migraciones aplicadas")
}
