package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
	infrapdf "github.com/mialmacen/pos-api/internal/infrastructure/pdf"
	httpRouter "github.com/mialmacen/pos-api/internal/interfaces/http"
	"github.com/mialmacen/pos-api/pkg/config"
	"github.com/mialmacen/pos-api/pkg/logger"
	"github.com/spf13/afero"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	var slot docstore.Slot
	switch cfg.Store.Driver {
	case "sqlite":
		sq, err := docstore.OpenSQLiteSlot(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir slot sqlite")
		}
		defer sq.Close()
		slot = sq
	default:
		slot = docstore.NewFileSlot(afero.NewOsFs(), cfg.Store.Path)
	}

	store, err := docstore.Open(slot, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir documento")
	}

	productUC := usecase.NewProductUseCase(store)
	customerUC := usecase.NewCustomerUseCase(store)
	cartUC := usecase.NewCartUseCase(store)
	saleUC := usecase.NewSaleUseCase(store)
	reportUC := usecase.NewReportUseCase(store)
	settingsUC := usecase.NewSettingsUseCase(store)
	backupUC := usecase.NewBackupUseCase(store)

	// El mostrador debe existir antes de atender el primer request.
	if err := customerUC.EnsureDefault(); err != nil {
		log.Fatal().Err(err).Msg("garantizar cliente mostrador")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CustomerUC: customerUC,
		CartUC:     cartUC,
		SaleUC:     saleUC,
		ReportUC:   reportUC,
		SettingsUC: settingsUC,
		BackupUC:   backupUC,
		PDF:        infrapdf.NewGenerator(),
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

	log.Info().Msg("servidor detenido")
}
