package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Geocoder  GeocoderConfig
	Suggester SuggesterConfig
	Resolver  ResolverConfig
	RateLimit RateLimitConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	// Enabled - хранить справочник в PostgreSQL; иначе используется in-memory хранилище
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	// Enabled - использовать Redis для кеша, rate limit и аналитики
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type GeocoderConfig struct {
	BaseURL     string
	UserAgent   string
	Country     string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

type SuggesterConfig struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
}

type ResolverConfig struct {
	RadiusKm    float64
	ScoreCutoff int
	KnownCities []string
	// GeocodeUnrecognized - геокодировать запрос, не подтвержденный ни словарем,
	// ни сервисом подсказок (по умолчанию такой запрос считается нераспознанным)
	GeocodeUnrecognized bool
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Window            time.Duration
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	TopQueries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// .env не обязателен: в контейнере конфигурация приходит из окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("DB_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			PoolSize: viper.GetInt("REDIS_POOL_SIZE"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:     viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:   viper.GetString("GEOCODER_USER_AGENT"),
			Country:     viper.GetString("GEOCODER_COUNTRY"),
			Timeout:     time.Duration(viper.GetInt("GEOCODER_TIMEOUT")) * time.Millisecond,
			MaxAttempts: viper.GetInt("GEOCODER_MAX_ATTEMPTS"),
			RetryDelay:  time.Duration(viper.GetInt("GEOCODER_RETRY_DELAY")) * time.Millisecond,
		},
		Suggester: SuggesterConfig{
			Enabled: viper.GetBool("SUGGESTER_ENABLED"),
			BaseURL: viper.GetString("SUGGESTER_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("SUGGESTER_TIMEOUT")) * time.Millisecond,
		},
		Resolver: ResolverConfig{
			RadiusKm:            viper.GetFloat64("RESOLVER_RADIUS_KM"),
			ScoreCutoff:         viper.GetInt("RESOLVER_SCORE_CUTOFF"),
			KnownCities:         parseList(viper.GetString("RESOLVER_KNOWN_CITIES")),
			GeocodeUnrecognized: viper.GetBool("RESOLVER_GEOCODE_UNRECOGNIZED"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			Window:            time.Duration(viper.GetInt("RATE_LIMIT_WINDOW")) * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
			TopQueries:    viper.GetInt("STATS_TOP_QUERIES"),
		},
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("API_CORS_ORIGINS", "*")

	viper.SetDefault("DB_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_POOL_SIZE", 10)

	viper.SetDefault("GEOCODE_CACHE_TTL", 86400)
	viper.SetDefault("STATS_CACHE_TTL", 30)

	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "property-locator/1.0")
	viper.SetDefault("GEOCODER_COUNTRY", "India")
	viper.SetDefault("GEOCODER_TIMEOUT", 5000)
	viper.SetDefault("GEOCODER_MAX_ATTEMPTS", 3)
	viper.SetDefault("GEOCODER_RETRY_DELAY", 500)

	viper.SetDefault("SUGGESTER_ENABLED", true)
	viper.SetDefault("SUGGESTER_BASE_URL", "https://api.datamuse.com")
	viper.SetDefault("SUGGESTER_TIMEOUT", 5000)

	viper.SetDefault("RESOLVER_RADIUS_KM", 50)
	viper.SetDefault("RESOLVER_SCORE_CUTOFF", 60)
	viper.SetDefault("RESOLVER_GEOCODE_UNRECOGNIZED", false)

	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW", 60)

	viper.SetDefault("WORKER_CONSUMER_GROUP", "resolution-stats-workers")
	viper.SetDefault("WORKER_BATCH_SIZE", 50)
	viper.SetDefault("STATS_TOP_QUERIES", 10)
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// DSN - строка подключения в формате key=value для pgx/lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
