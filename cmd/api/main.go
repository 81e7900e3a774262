// @title        Leave Tracker API
// @version      1.0
// @description  Seguimiento de solicitudes de permiso de voluntarios: envío, revisión y administración de usuarios.
// @BasePath     /
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
	"github.com/gofiber/fiber/v2/middleware/session"

	_ "github.com/jhoicas/leave-tracker/docs"
	"github.com/jhoicas/leave-tracker/internal/application/auth"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/leave-tracker/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/leave-tracker/internal/interfaces/http"
	"github.com/jhoicas/leave-tracker/pkg/config"
	"github.com/jhoicas/leave-tracker/pkg/logger"
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

	migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("preparar migraciones")
	}
	if err := migrator.Up(); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	if err := migrator.Close(); err != nil {
		log.Warn().Err(err).Msg("cerrar migrador")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	requestRepo := postgres.NewLeaveRequestRepository(pool)
	warningRepo := postgres.NewWarningRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	viewUC := usecase.NewViewUseCase(userRepo, requestRepo, warningRepo)
	requestUC := usecase.NewRequestUseCase(txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:           cfg.JWT.Secret,
		ExpMinutes:       cfg.JWT.Expiration,
		Issuer:           cfg.JWT.Issuer,
		InviteExpMinutes: cfg.JWT.InviteExpiration,
	})

	// Sesiones: memoria por defecto, Redis cuando hay varias réplicas.
	sessCfg := session.Config{
		Expiration:     time.Duration(cfg.Session.Expiration) * time.Minute,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		CookieSecure:   cfg.Session.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	}
	if cfg.Session.Store == "redis" {
		storage, err := redisstore.New(cfg.Session.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("configurar Redis")
		}
		if err := storage.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer storage.Close()
		sessCfg.Storage = storage
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Leave Tracker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ViewUC:    viewUC,
		RequestUC: requestUC,
		UserUC:    userUC,
		AuthUC:    authUC,
		Users:     userRepo,
		JWTSecret: cfg.JWT.Secret,
		Sessions:  session.New(sessCfg),
		Cookie: httpRouter.CookieConfig{
			Secure:     cfg.Session.CookieSecure,
			ExpMinutes: cfg.JWT.Expiration,
		},
		LinkBase:     cfg.App.BaseURL,
		Renderer:     httpRouter.JSONRenderer{},
		Metrics:      httpRouter.NewMetrics(),
		LoginLimiter: httpRouter.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst),
		Logger:       log,
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
