// seed crea el primer usuario administrador. Aplica las migraciones si DB_AUTO_MIGRATE está activo.
//
// Uso: go run ./cmd/seed -username admin -name "Administrador" -password 'Secreta123'
// La contraseña también puede venir de SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/infrastructure/postgres"
	"github.com/seifmegahed/daftar/pkg/config"
	"github.com/seifmegahed/daftar/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "usuario del administrador")
	name := flag.String("name", "Administrator", "nombre visible")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "contraseña (o SEED_ADMIN_PASSWORD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	users := usecase.NewUserUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewSessionRepository(pool),
		0,
		usecase.Shared{Log: log},
	)
	out, err := users.Create(ctx, dto.CreateUserRequest{
		Username: *username,
		Name:     *name,
		Password: *password,
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		log.Info().Str("username", *username).Msg("el usuario ya existe, nada que hacer")
		return
	case err != nil:
		log.Fatal().Err(err).Str("username", *username).Msg("crear administrador")
	}
	log.Info().Str("id", out.ID).Str("username", out.Username).Msg("administrador creado")
}
