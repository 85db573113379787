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

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/auth"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/infrastructure/postgres"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/infrastructure/storage"
	httpRouter "github.com/dramirez-dev/conecta-pueblo-api/internal/interfaces/http"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/config"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empleoRepo := postgres.NewEmpleoRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	negocioRepo := postgres.NewNegocioRepository(pool)
	resenaRepo := postgres.NewResenaRepository(pool)
	articuloRepo := postgres.NewArticuloRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	empleoUC := usecase.NewEmpleoUseCase(empleoRepo)
	eventoUC := usecase.NewEventoUseCase(eventoRepo)
	negocioUC := usecase.NewNegocioUseCase(negocioRepo, resenaRepo, txRunner)
	resenaUC := usecase.NewResenaUseCase(resenaRepo, negocioRepo)
	articuloUC := usecase.NewArticuloUseCase(articuloRepo)

	authUC := auth.NewAuthUseCase(auth.Config{
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		Secret:       cfg.Session.Secret,
		Issuer:       cfg.App.Name,
		TTL:          time.Duration(cfg.Session.TTLHours) * time.Hour,
	})

	// El almacenamiento de objetos es opcional: sin credenciales la API
	// funciona igual, solo se deshabilita la subida de imágenes.
	var uploader storage.Uploader
	if cfg.Storage.AccessKey != "" {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión al almacenamiento de objetos")
		}
		uploader = minioClient
	} else {
		log.Warn().Msg("almacenamiento de objetos sin configurar, subida de imágenes deshabilitada")
	}

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
		Title:    "Conecta Pueblo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpleoUC:   empleoUC,
		EventoUC:   eventoUC,
		NegocioUC:  negocioUC,
		ResenaUC:   resenaUC,
		ArticuloUC: articuloUC,
		AuthUC:     authUC,
		Uploader:   uploader,

		SessionSecret: cfg.Session.Secret,
		CookieName:    cfg.Session.CookieName,
		SecureCookies: cfg.App.Env == "production",
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
