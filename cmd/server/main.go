package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"

	"medtracker/docs"
	"medtracker/internal/config"
	"medtracker/internal/db"
	"medtracker/internal/handler"
	"medtracker/internal/repository"
	"medtracker/internal/router"
	"medtracker/internal/service"
	"medtracker/internal/storage"
)

// @title Medicine Tracker API
// @version 1.0
// @description Medicine schedule tracker with prescription image uploads.
// @host localhost:8000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Logger.SetLevel(glog.INFO)

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		e.Logger.Warn("RESET_DB=true detected, dropping medicines table")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store, err := newStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("prescription store: %v", err)
	}

	medicineRepo := repository.NewMedicineRepository(gormDB)

	medicineService := service.NewMedicineService(medicineRepo)
	prescriptionService := service.NewPrescriptionService(medicineRepo, store)

	router.Register(
		e,
		cfg,
		handler.NewAppHandler(cfg.IndexFile),
		handler.NewMedicineHandler(medicineService),
		handler.NewPrescriptionHandler(prescriptionService, cfg.MaxUploadBytes),
	)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = host
		swaggerURL = "http://" + host + "/swagger/index.html"
	}
	e.Logger.Infof("db driver %s, prescription storage %s", cfg.DBDriver, cfg.StorageBackend)
	e.Logger.Infof("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == config.StorageMinIO {
		return storage.NewMinIOStore(ctx, storage.MinIOOptions{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			UseSSL:    cfg.MinIOUseSSL,
		})
	}
	return storage.NewLocalStore(cfg.UploadDir)
}
