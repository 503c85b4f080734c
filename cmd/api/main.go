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
	"github.com/tu-usuario/solicitudes-api/internal/application/analytics"
	"github.com/tu-usuario/solicitudes-api/internal/application/auth"
	"github.com/tu-usuario/solicitudes-api/internal/application/notify"
	"github.com/tu-usuario/solicitudes-api/internal/application/usecase"
	"github.com/tu-usuario/solicitudes-api/internal/application/watch"
	infrapdf "github.com/tu-usuario/solicitudes-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/solicitudes-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/solicitudes-api/internal/interfaces/http"
	"github.com/tu-usuario/solicitudes-api/pkg/config"
	"github.com/tu-usuario/solicitudes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)

	hub := watch.NewHub()
	for _, collection := range []string{watch.CollectionClients, watch.CollectionProducts, watch.CollectionSolicitudes} {
		collection := collection
		hub.Subscribe(collection, func(snapshot interface{}) {
			log.Debug().Str("collection", collection).Msg("snapshot publicado")
		})
	}

	notifier := notify.NewLogNotifier(log)

	clientUC := usecase.NewClientUseCase(clientRepo, solicitudRepo, hub)
	productUC := usecase.NewProductUseCase(productRepo, solicitudRepo, hub, notifier)
	solicitudUC := usecase.NewSolicitudUseCase(solicitudRepo, clientRepo, productRepo, hub, notifier)
	statsUC := analytics.NewStatsUseCase(solicitudRepo)

	// PDF: vista imprimible de la solicitud
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := usecase.NewPDFUseCase(solicitudRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
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
		Title:    "Solicitudes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		ProductUC:   productUC,
		SolicitudUC: solicitudUC,
		PDFUC:       pdfUC,
		StatsUC:     statsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
