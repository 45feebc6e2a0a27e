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
	"github.com/jhoicas/Restaurante-api/internal/application/menu"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("nav_store", cfg.Nav.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		store    repository.ConfigStore
		roleRepo repository.RolePermissionRepository
		roleTx   ports.RoleTxRunner
		userRepo repository.UserRepository
	)
	if cfg.Nav.Store == config.StoreMemory {
		// Modo local: todo en memoria, sin PostgreSQL.
		store = memory.NewConfigStore()
		roles := memory.NewRolePermissionRepository()
		roleRepo, roleTx = roles, roles
		userRepo = memory.NewUserRepository()
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		roleRepo = postgres.NewRolePermissionRepository(pool)
		roleTx = postgres.NewTxRunner(pool)
		userRepo = postgres.NewUserRepository(pool)
		store = postgres.NewConfigStore(pool)

		if cfg.Nav.Store == config.StoreRedis {
			client, err := redisstore.NewClient(ctx, cfg.Redis)
			if err != nil {
				log.Fatal().Err(err).Msg("conexión a Redis")
			}
			defer client.Close()
			store = redisstore.NewConfigStore(client, cfg.Redis.KeyPrefix)
		}
	}

	navMetrics := metrics.NewNavMetrics("restaurante")

	roleUC := usecase.NewRoleUseCase(
		roleRepo,
		roleTx,
		cfg.Nav.PermissionCacheSize,
		time.Duration(cfg.Nav.PermissionCacheTTLSeconds)*time.Second,
		log,
	)
	if err := roleUC.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar permisos de fábrica")
	}

	catalog := navigation.Default()
	injections := navigation.DefaultInjections()
	var engineOpts []navigation.Option
	if !cfg.Nav.HideEmptyHeaders {
		engineOpts = append(engineOpts, navigation.WithEmptyHeaders())
	}
	engine := navigation.NewEngine(catalog, injections, engineOpts...)
	menuSvc := menu.NewService(store, engine, roleUC, userRepo, navMetrics, log)

	// Un cambio de permisos de un rol resincroniza los menús guardados de sus usuarios.
	roleUC.OnChange(func(ctx context.Context, role string) {
		if err := menuSvc.ResyncRole(ctx, role); err != nil {
			log.Error().Err(err).Str("role", role).Msg("resincronizar menús del rol")
		}
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurante API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MenuService: menuSvc,
		RoleUC:      roleUC,
		Users:       userRepo,
		Catalog:     catalog,
		Injections:  injections,
		Metrics:     navMetrics,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
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

	log.Info().Msg("aplicación detenida")
}
