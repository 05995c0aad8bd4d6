package main

// @title Odor Source Service API
// @version 1.0.0
// @description Сервис поиска вероятных источников неприятного запаха по текстовому запросу. Извлекает из текста название места (справочник городов, NER, список районов Ахмадабада), геокодирует его через Nominatim и возвращает объекты из подготовленной базы знаний в радиусе поиска, упорядоченные по релевантности TF-IDF и расстоянию.

// @contact.name API Support
// @contact.email support@odor-source-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/odor-source-service/docs/swagger"
	"github.com/odor-source-service/internal/config"
	httpDelivery "github.com/odor-source-service/internal/delivery/http"
	"github.com/odor-source-service/internal/delivery/http/handler"
	"github.com/odor-source-service/internal/extractor"
	"github.com/odor-source-service/internal/infrastructure/nominatim"
	"github.com/odor-source-service/internal/metrics"
	"github.com/odor-source-service/internal/pkg/logger"
	"github.com/odor-source-service/internal/pkg/utils"
	"github.com/odor-source-service/internal/repository/cache"
	"github.com/odor-source-service/internal/repository/facility"
	"github.com/odor-source-service/internal/repository/index"
	"github.com/odor-source-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if !utils.ValidateRadiusM(cfg.Search.RadiusM) {
		log.Fatal("Search radius out of range", zap.Float64("radius_m", cfg.Search.RadiusM))
	}

	log.Info("Starting Odor Source Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Float64("search_radius_m", cfg.Search.RadiusM),
		zap.String("city", cfg.Search.City),
	)

	// 3. Load the facility store. The service cannot answer queries
	// without it, so a missing or malformed dataset is fatal.
	facilityRepo, err := facility.Load(cfg.Artifact.FacilitiesPath, log)
	if err != nil {
		log.Fatal("Failed to load facility store", zap.Error(err))
	}
	log.Info("Facility store loaded", zap.Int("records", facilityRepo.Len()))

	// 4. Load relevance index artifacts
	indexRepo := index.NewArtifactRepository(cfg.Artifact.VectorizerPath, cfg.Artifact.WeightsPath, log)
	vectorizer, weights, err := indexRepo.Load()
	if err != nil {
		log.Fatal("Failed to load relevance index artifacts", zap.Error(err))
	}

	// The weight matrix rows correspond to store records by position.
	// A count mismatch means the artifacts were built from a different
	// dataset version than the one just loaded.
	if len(weights) != facilityRepo.Len() {
		log.Fatal("Relevance index does not match the facility store",
			zap.Int("index_rows", len(weights)),
			zap.Int("store_records", facilityRepo.Len()),
		)
	}
	log.Info("Relevance index loaded",
		zap.Int("vocabulary", len(vectorizer.Terms)),
		zap.Int("rows", len(weights)),
	)

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 7. Initialize repositories and the geocoder client
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocoderRepo := nominatim.NewClient(&cfg.Geocoder, log)
	log.Info("Repositories initialized")

	// 8. Initialize use cases
	locExtractor := extractor.New(log)
	spatialUC := usecase.NewSpatialUseCase(facilityRepo, log)
	rankUC := usecase.NewRankUseCase(vectorizer, weights, log)
	queryUC := usecase.NewQueryUseCase(
		locExtractor,
		geocoderRepo,
		cacheRepo,
		spatialUC,
		rankUC,
		cfg.Search.RadiusM,
		cfg.Search.City,
		cfg.Cache.GeocodeCacheTTL,
		log,
	)
	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers and server
	queryHandler := handler.NewQueryHandler(queryUC, log)
	server := httpDelivery.NewServer(cfg, log, queryHandler, redisClient)

	metrics.Register()
	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
