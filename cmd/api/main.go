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
	appinventory "github.com/tu-usuario/confeccion-api/internal/application/inventory"
	"github.com/tu-usuario/confeccion-api/internal/application/production"
	"github.com/tu-usuario/confeccion-api/internal/application/usecase"
	domaininv "github.com/tu-usuario/confeccion-api/internal/domain/inventory"
	infrapdf "github.com/tu-usuario/confeccion-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/confeccion-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/confeccion-api/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/confeccion-api/internal/interfaces/http"
	"github.com/tu-usuario/confeccion-api/pkg/config"
	"github.com/tu-usuario/confeccion-api/pkg/logger"
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

	insumoRepo := postgres.NewInsumoRepository(pool)
	manoObraRepo := postgres.NewManoObraRepository(pool)
	pantalonRepo := postgres.NewPantalonRepository(pool)
	recetaRepo := postgres.NewRecetaRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clasificador := domaininv.NewClasificador(domaininv.UmbralesPorDefecto())
	ledger := appinventory.NewLedger(clasificador)

	imagenStore := storage.NewLocalImagenStore(cfg.Storage.ImagenesDir)
	fichaGenerator := infrapdf.NewMarotoFichaGenerator()

	insumoUC := usecase.NewInsumoUseCase(insumoRepo, recetaRepo, movRepo, txRunner, ledger, clasificador)
	manoObraUC := usecase.NewManoObraUseCase(manoObraRepo, recetaRepo)
	pantalonUC := production.NewPantalonUseCase(
		txRunner, ledger,
		pantalonRepo, recetaRepo, insumoRepo, manoObraRepo,
		imagenStore, fichaGenerator,
	)

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
		Title:    "Confección API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InsumoUC:   insumoUC,
		ManoObraUC: manoObraUC,
		PantalonUC: pantalonUC,
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
