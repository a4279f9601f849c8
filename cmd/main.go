package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/climate_risk_grid/internal/cache"
	"github.com/shenikar/climate_risk_grid/internal/config"
	"github.com/shenikar/climate_risk_grid/internal/datasource"
	"github.com/shenikar/climate_risk_grid/internal/events"
	"github.com/shenikar/climate_risk_grid/internal/grid"
	v1 "github.com/shenikar/climate_risk_grid/internal/handler/http/v1"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/shenikar/climate_risk_grid/internal/repository"
	"github.com/shenikar/climate_risk_grid/internal/risk"
	"github.com/shenikar/climate_risk_grid/internal/service"
	"github.com/shenikar/climate_risk_grid/internal/webhook"
	"github.com/shenikar/climate_risk_grid/pkg/logger"
	"github.com/shenikar/climate_risk_grid/pkg/postgres"
	redisclient "github.com/shenikar/climate_risk_grid/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/climate_risk_grid/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Climate Risk Grid API
// @version 1.0
// @description Physical climate risk assessment for Brazilian municipalities with H3 risk grids.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newMunicipalityRepository выбирает реестр: PostGIS при заданном DATABASE_URL, иначе встроенный
func newMunicipalityRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.MunicipalityRepository, *pgxpool.Pool) {
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL not set, using built-in municipality registry")
		return repository.NewMemoryMunicipalityRepository(), nil
	}

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	log.Info("Successfully connected to PostgreSQL")
	return repository.NewMunicipalityRepository(dbpool), dbpool
}

// newCacheBackend возвращает Redis-бэкенд или in-memory; для in-memory дополнительно возвращает сам бэкенд для чистки
func newCacheBackend(cfg *config.Config, redisClient *goredis.Client, clock clockwork.Clock) (cache.Backend, *cache.MemoryBackend) {
	if cfg.CacheBackend == "redis" && redisClient != nil {
		return cache.NewRedisBackend(redisClient, cfg.CacheKeyPrefix), nil
	}
	mem := cache.NewMemoryBackend(clock, cfg.CacheMaxEntries)
	return mem, mem
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	// Реестр муниципалитетов
	municipalityRepo, dbpool := newMunicipalityRepository(ctx, cfg, log)
	if dbpool != nil {
		defer dbpool.Close()
	}

	// Redis нужен для общего кеша и очереди вебхуков
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
		if err != nil {
			if cfg.CacheBackend == "redis" {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			log.WithError(err).Warn("Redis unavailable, webhook delivery disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("Successfully connected to Redis")
		}
	}

	// Издатели событий
	publishers := events.Fanout{events.NewLogPublisher(log)}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
		log.WithField("topic", cfg.KafkaTopic).Info("Kafka event publisher enabled")
	}

	var webhookWorker *webhook.EventWorker
	if redisClient != nil && cfg.WebhookURL != "" {
		types := make([]events.Type, len(cfg.WebhookEventTypes))
		for i, t := range cfg.WebhookEventTypes {
			types[i] = events.Type(t)
		}
		publishers = append(publishers, webhook.NewRedisEventPublisher(redisClient, types))

		// Инициализация и запуск воркера вебхуков
		webhookWorker = webhook.NewEventWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Доставка событий в фоне: медленный брокер не задерживает ответы
	publisher := events.NewAsyncPublisher(publishers, cfg.EventQueueSize, cfg.EventPublishTimeout, metrics, log)

	// Источник данных об угрозах
	var hazardSource datasource.HazardDataSource = datasource.NewSyntheticSource()
	if cfg.DataSourceURL != "" {
		live := datasource.NewHTTPSource(cfg.DataSourceURL, cfg.DataSourceTimeout, metrics, log)
		hazardSource = datasource.NewFallbackSource(live, hazardSource, cfg.DataSourceTimeout, publisher, clock, metrics, log)
		log.WithField("url", cfg.DataSourceURL).Info("Live hazard data source enabled")
	}

	// Кеш результатов
	backend, memoryBackend := newCacheBackend(cfg, redisClient, clock)
	resultCache := cache.New(backend, metrics, log)
	if memoryBackend != nil {
		sweeper, err := cache.NewSweeper(memoryBackend, cfg.CacheSweepSchedule, metrics, log)
		if err != nil {
			log.Fatalf("Failed to schedule cache sweeper: %v", err)
		}
		sweeper.Start()
		defer sweeper.Stop()
	}
	log.WithField("backend", backend.Name()).Info("Result cache initialized")

	// Инициализация сервисов
	registry := service.NewLocationRegistry(municipalityRepo, cfg.AllowSyntheticFallback, cfg.SnapRadiusKm, log)
	engine := risk.NewEngine(hazardSource, registry, clock, metrics, log)
	riskService := service.NewRiskService(
		registry,
		engine,
		grid.NewService(metrics, log),
		resultCache,
		publisher,
		clock,
		metrics,
		log,
		service.Options{
			AssessmentTTL: cfg.AssessmentCacheTTL,
			GridTTL:       cfg.GridCacheTTL,
		},
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(riskService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Доставляем события, поставленные в очередь до остановки сервера
	publisher.Close()

	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
