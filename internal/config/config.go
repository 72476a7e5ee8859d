package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/property-browser/pkg/logger"
)

// DefaultAPIBase is the property API origin used when API_BASE is unset
const DefaultAPIBase = "http://localhost:5292"

// APIConfig holds configuration for the remote property API
type APIConfig struct {
	BaseURLs    []string
	Timeout     time.Duration
	HealthCheck string
}

// SessionConfig holds the identity cookie settings
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// RedisConfig holds the session store connection
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds the like-event publisher settings; no brokers disables it
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// TracingConfig holds tracer settings
type TracingConfig struct {
	Enabled        bool
	JaegerEndpoint string
}

// Config holds the front end configuration
type Config struct {
	ServiceName   string
	Environment   string
	LogLevel      string
	Port          string
	OpsPort       string
	Locale        string
	LikeRateLimit int
	API           APIConfig
	Session       SessionConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Tracing       TracingConfig
}

// IsDevelopment reports whether pretty console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads .env (if present) and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Debug().Msg(".env file not found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() *Config {
	return &Config{
		ServiceName:   getEnv("OTEL_SERVICE_NAME", "property-browser"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          getEnv("PORT", "3000"),
		OpsPort:       getEnv("OPS_PORT", "9100"),
		Locale:        getEnv("LOCALE", "th-TH"),
		LikeRateLimit: getEnvInt("LIKE_RATE_LIMIT", 30),
		API: APIConfig{
			BaseURLs:    splitList(getEnv("API_BASE", DefaultAPIBase)),
			Timeout:     getEnvDuration("API_TIMEOUT", 10*time.Second),
			HealthCheck: getEnv("API_HEALTH_PATH", UsersPath),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "sid"),
			TTL:        getEnvDuration("SESSION_TTL", 30*24*time.Hour),
			Secure:     getEnv("SESSION_SECURE", "false") == "true",
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "property-liked"),
		},
		Tracing: TracingConfig{
			Enabled:        getEnv("TRACING_ENABLED", "true") == "true",
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}

// splitList splits a comma separated value, trimming blanks and trailing slashes
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
