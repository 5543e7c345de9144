package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"shopperSpectrum/app/echo-server/metrics"
	"shopperSpectrum/app/echo-server/router"
	"shopperSpectrum/business/catalog"
	"shopperSpectrum/business/recommend"
	"shopperSpectrum/business/segment"
	"shopperSpectrum/internal/middleware"
	"shopperSpectrum/internal/repository/artifact"
	psqlRepo "shopperSpectrum/internal/repository/postgres"
	"shopperSpectrum/internal/rest"
	"shopperSpectrum/pkg/config"
	"shopperSpectrum/pkg/database"
	"shopperSpectrum/pkg/logger"
	domainMetrics "shopperSpectrum/pkg/metrics"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()
	domainMetrics.Init()

	// Product names from Postgres are optional; the artifact names file is always read.
	var names artifact.NameRepository
	if cfg.Database.Enabled {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		defer func() {
			if err := database.ClosePostgres(db); err != nil {
				logger.Error("Failed to close database", "error", err)
			}
		}()
		logger.Info("Database connected successfully")
		names = psqlRepo.NewProductRepository(db)
	}

	// Init artifacts
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	artifacts, err := artifact.NewStore(cfg.Artifacts.Dir, names).Load(loadCtx)
	cancelLoad()
	if err != nil {
		logger.Fatal("Failed to load model artifacts", "dir", cfg.Artifacts.Dir, "error", err)
	}

	// Init service
	recommendService := recommend.NewService(artifacts, cfg.Recommend.TopK)
	segmentService := segment.NewService(artifacts)
	catalogService := catalog.NewCatalogService(artifacts)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendService)
	segmentHandler := rest.NewSegmentHandler(segmentService)
	productHandler := rest.NewProductHandler(catalogService)
	healthHandler := rest.NewHealthHandler(artifacts, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	router.SetOpsRoutes(e, healthHandler)
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendationHandler)
	router.SetSegmentRoutes(api, segmentHandler)
	router.SetupProductRoutes(api, productHandler)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
