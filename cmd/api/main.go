package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/seifmegahed/daftar/internal/application/analytics"
	"github.com/seifmegahed/daftar/internal/application/auth"
	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/infrastructure/cache"
	"github.com/seifmegahed/daftar/internal/infrastructure/metrics"
	infrapdf "github.com/seifmegahed/daftar/internal/infrastructure/pdf"
	"github.com/seifmegahed/daftar/internal/infrastructure/postgres"
	"github.com/seifmegahed/daftar/internal/infrastructure/scheduler"
	"github.com/seifmegahed/daftar/internal/infrastructure/storage"
	httpRouter "github.com/seifmegahed/daftar/internal/interfaces/http"
	"github.com/seifmegahed/daftar/pkg/config"
	"github.com/seifmegahed/daftar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

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

	tagCache, closeCache, err := cache.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Cache.Driver).Msg("caché")
	}
	defer func() { _ = closeCache() }()

	objects, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacenamiento de documentos")
	}

	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	lineItemRepo := postgres.NewLineItemRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	requestRepo := postgres.NewUserRequestRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	shared := usecase.Shared{Cache: tagCache, CacheTTL: cfg.Cache.TTL, Log: log}

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		SessionTTL: cfg.Session.TTL,
	}, log)
	userUC := usecase.NewUserUseCase(userRepo, sessionRepo, 0, shared)
	clientUC := usecase.NewClientUseCase(clientRepo, addressRepo, contactRepo, projectRepo, txRunner, shared)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, addressRepo, contactRepo, itemRepo, txRunner, shared)
	addressUC := usecase.NewAddressUseCase(addressRepo, contactRepo, clientRepo, supplierRepo, shared)
	projectUC := usecase.NewProjectUseCase(projectRepo, commentRepo, clientRepo, userRepo, shared)
	itemUC := usecase.NewItemUseCase(itemRepo, projectRepo, supplierRepo, shared)

	// PDF: oferta comercial del proyecto
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	lineItemUC := usecase.NewLineItemUseCase(lineItemRepo, projectRepo, itemRepo, supplierRepo, clientRepo, addressRepo, pdfGenerator, shared)

	documentUC := usecase.NewDocumentUseCase(documentRepo, projectRepo, itemRepo, supplierRepo, clientRepo,
		objects, txRunner, cfg.Storage.MaxUploadBytes, shared)
	documentUC.OnUpload = metrics.DocumentUploaded

	requestUC := usecase.NewUserRequestUseCase(requestRepo, shared)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, projectRepo, tagCache, cfg.Cache.TTL, log)

	jobs, err := scheduler.New(cfg.Session.PurgeCron, authUC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	jobs.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		// el límite propio de documentos responde 413 con código; esto es el tope duro
		BodyLimit: int(cfg.Storage.MaxUploadBytes) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.LocaleMiddleware(cfg.App.IsProduction()))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Daftar API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Authenticator: authUC,
		UserUC:        userUC,
		ClientUC:      clientUC,
		SupplierUC:    supplierUC,
		AddressUC:     addressUC,
		ProjectUC:     projectUC,
		LineItemUC:    lineItemUC,
		ItemUC:        itemUC,
		DocumentUC:    documentUC,
		RequestUC:     requestUC,
		DashboardUC:   dashboardUC,
		SecureCookies: cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	jobs.Stop()

	log.Info().Msg("aplicación detenida")
}
