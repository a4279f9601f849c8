package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Пределы таймаута живого источника данных
const (
	MinDataSourceTimeout = time.Second
	MaxDataSourceTimeout = 60 * time.Second
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Реестр муниципалитетов в PostgreSQL/PostGIS; пусто - встроенный реестр
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Cache Config
	CacheBackend       string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheKeyPrefix     string        `env:"CACHE_KEY_PREFIX" envDefault:"climate_risk:"`
	CacheMaxEntries    int           `env:"CACHE_MAX_ENTRIES" envDefault:"10000"`
	AssessmentCacheTTL time.Duration `env:"ASSESSMENT_CACHE_TTL" envDefault:"1h"`
	GridCacheTTL       time.Duration `env:"GRID_CACHE_TTL" envDefault:"1h"`
	CacheSweepSchedule string        `env:"CACHE_SWEEP_SCHEDULE" envDefault:"@every 1m"`

	// Hazard Data Source Config
	DataSourceURL          string        `env:"DATA_SOURCE_URL"`
	DataSourceTimeout      time.Duration `env:"DATA_SOURCE_TIMEOUT" envDefault:"10s"`
	AllowSyntheticFallback bool          `env:"ALLOW_SYNTHETIC_FALLBACK" envDefault:"true"`
	SnapRadiusKm           float64       `env:"SNAP_RADIUS_KM" envDefault:"30"`

	// Event delivery
	EventQueueSize      int           `env:"EVENT_QUEUE_SIZE" envDefault:"1024"`
	EventPublishTimeout time.Duration `env:"EVENT_PUBLISH_TIMEOUT" envDefault:"5s"`

	// Kafka Config
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"climate-risk-events"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
	WebhookEventTypes []string      `env:"WEBHOOK_EVENT_TYPES" envDefault:"risk.critical,datasource.fallback_used"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout:        getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:          getEnvAsInt("REDIS_POOL_SIZE", 10),
		CacheBackend:           strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
		CacheKeyPrefix:         getEnv("CACHE_KEY_PREFIX", "climate_risk:"),
		CacheMaxEntries:        getEnvAsInt("CACHE_MAX_ENTRIES", 10000),
		AssessmentCacheTTL:     getEnvAsDuration("ASSESSMENT_CACHE_TTL", time.Hour),
		GridCacheTTL:           getEnvAsDuration("GRID_CACHE_TTL", time.Hour),
		CacheSweepSchedule:     getEnv("CACHE_SWEEP_SCHEDULE", "@every 1m"),
		DataSourceURL:          os.Getenv("DATA_SOURCE_URL"),
		DataSourceTimeout:      getEnvAsDuration("DATA_SOURCE_TIMEOUT", 10*time.Second),
		AllowSyntheticFallback: getEnvAsBool("ALLOW_SYNTHETIC_FALLBACK", true),
		SnapRadiusKm:           getEnvAsFloat("SNAP_RADIUS_KM", 30),
		EventQueueSize:         getEnvAsInt("EVENT_QUEUE_SIZE", 1024),
		EventPublishTimeout:    getEnvAsDuration("EVENT_PUBLISH_TIMEOUT", 5*time.Second),
		KafkaBrokers:           getEnvAsList("KAFKA_BROKERS", nil),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "climate-risk-events"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		WebhookEventTypes:      getEnvAsList("WEBHOOK_EVENT_TYPES", []string{"risk.critical", "datasource.fallback_used"}),
		APIKeys:                getEnvAsList("API_KEYS", nil),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.DataSourceTimeout < MinDataSourceTimeout || c.DataSourceTimeout > MaxDataSourceTimeout {
		return fmt.Errorf("DATA_SOURCE_TIMEOUT must be between %v and %v, got %v", MinDataSourceTimeout, MaxDataSourceTimeout, c.DataSourceTimeout)
	}
	switch c.CacheBackend {
	case "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", c.CacheBackend)
	}
	if c.AssessmentCacheTTL <= 0 || c.GridCacheTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.SnapRadiusKm < 0 {
		return fmt.Errorf("SNAP_RADIUS_KM must not be negative")
	}
	if c.EventQueueSize < 1 || c.EventPublishTimeout <= 0 {
		return fmt.Errorf("EVENT_QUEUE_SIZE and EVENT_PUBLISH_TIMEOUT must be positive")
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
