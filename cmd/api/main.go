package main

// @title Property Locator API
// @version 1.0.0
// @description Сервис поиска объектов размещения по названию места. Запрос проходит исправление опечаток, прямое совпадение по городу, а при его отсутствии - геокодирование и поиск объектов в радиусе.
// @description
// @description Типы результата:
// @description - direct_match - объекты в указанном городе
// @description - proximity_match - объекты в радиусе от найденной точки
// @description - no_match - место найдено, но объектов рядом нет
// @description - location_not_found - место не удалось геокодировать
// @description - unrecognized - запрос не распознан

// @contact.name API Support
// @contact.email support@property-locator.dev

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

	_ "github.com/property-locator/docs/swagger"
	"github.com/property-locator/internal/config"
	httpDelivery "github.com/property-locator/internal/delivery/http"
	"github.com/property-locator/internal/delivery/http/handler"
	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/infrastructure/datamuse"
	"github.com/property-locator/internal/infrastructure/nominatim"
	"github.com/property-locator/internal/pkg/logger"
	"github.com/property-locator/internal/pkg/retry"
	"github.com/property-locator/internal/repository/cache"
	"github.com/property-locator/internal/repository/memory"
	"github.com/property-locator/internal/repository/postgres"
	redisRepo "github.com/property-locator/internal/repository/redis"
	"github.com/property-locator/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Property Locator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("postgres", cfg.Database.Enabled),
		zap.Bool("redis", cfg.Redis.Enabled),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 3. Property store: PostgreSQL или in-memory
	var propertyRepo repository.PropertyRepository
	var db *postgres.DB
	if cfg.Database.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		if err := db.Migrate(ctx); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		propertyRepo = postgres.NewPropertyRepository(db)
	} else {
		propertyRepo = memory.NewPropertyRepository()
		log.Info("Using in-memory property store")
	}

	// 4. Redis (опционально): кеш геокодера, rate limit, аналитика
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		streamRepo  repository.StreamRepository
		rateLimiter repository.RateLimiter
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
		rateLimiter = cache.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Window)
	} else {
		rateLimiter = memory.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Window)
		log.Info("Redis disabled, using in-process rate limiter")
	}

	// 5. Внешние сервисы
	geocoderClient := nominatim.NewNominatimClient(&cfg.Geocoder, log)

	var suggester repository.SuggestionRepository
	if cfg.Suggester.Enabled {
		suggester = datamuse.NewDatamuseClient(&cfg.Suggester, log)
	}

	// 6. Справочник объектов
	catalogUC := usecase.NewCatalogUseCase(propertyRepo, domain.SeedProperties(), log)
	catalog, err := catalogUC.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load property catalog", zap.Error(err))
	}

	// 7. Initialize Use Cases
	vocabulary := cfg.Resolver.KnownCities
	if len(vocabulary) == 0 {
		vocabulary = domain.KnownCities()
	}

	corrector := usecase.NewSpellingCorrector(vocabulary, cfg.Resolver.ScoreCutoff, suggester, log)
	geocoder := usecase.NewGeocoderAdapter(
		geocoderClient,
		cacheRepo,
		retry.Policy{MaxAttempts: cfg.Geocoder.MaxAttempts, Delay: cfg.Geocoder.RetryDelay},
		cfg.Geocoder.Country,
		cfg.Cache.GeocodeCacheTTL,
		log,
	)
	proximity := usecase.NewProximitySearch(cfg.Resolver.RadiusKm)

	resolveUC := usecase.NewResolveUseCase(
		catalog,
		corrector,
		geocoder,
		proximity,
		streamRepo,
		log,
		cfg.Resolver.GeocodeUnrecognized,
	)

	log.Info("Use cases initialized",
		zap.Int("vocabulary", len(vocabulary)),
		zap.Int("catalog", catalog.Len()),
		zap.Float64("radius_km", proximity.RadiusKm()),
	)

	// 8. Initialize HTTP Handlers
	propertyHandler := handler.NewPropertyHandler(resolveUC, catalogUC, log)

	var statsHandler *handler.StatsHandler
	if redisClient != nil {
		statsRepo := redisRepo.NewStatsRepository(redisClient.Client(), log)
		statsUC := usecase.NewStatsUseCase(
			statsRepo,
			cacheRepo,
			catalogUC,
			cfg.Worker.TopQueries,
			cfg.Cache.StatsCacheTTL,
			log,
		)
		statsHandler = handler.NewStatsHandler(statsUC, log)
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, propertyHandler, statsHandler, rateLimiter)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
