package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Bot      BotConfig
	Auth     AuthConfig
	Dialogue DialogueConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
	OtelEndpoint       string
	AdminUsername      string // seeded by cmd/seed
	AdminPassword      string
}

type DatabaseConfig struct {
	Connection string
}

type BotConfig struct {
	Token       string // bot is disabled when empty
	PollTimeout time.Duration
	SendTimeout time.Duration
	Workers     int
	DedupeTTL   time.Duration
	Debug       bool
}

type AuthConfig struct {
	JwtSecret string
	JwtTTL    time.Duration
}

type DialogueConfig struct {
	IdleTimeout  time.Duration
	RadiusKm     float64
	QueryTimeout time.Duration
	TopLimit     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			OtelEnabled:        getEnv("OTEL_ENABLED", "false") == "true",
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Bot: BotConfig{
			Token:       getEnv("TELEGRAM_BOT_TOKEN", ""),
			PollTimeout: getEnvAsDuration("BOT_POLL_TIMEOUT", 60*time.Second),
			SendTimeout: getEnvAsDuration("BOT_SEND_TIMEOUT", 10*time.Second),
			Workers:     getEnvAsInt("BOT_WORKERS", 8),
			DedupeTTL:   getEnvAsDuration("BOT_DEDUPE_TTL", 24*time.Hour),
			Debug:       getEnv("BOT_DEBUG", "false") == "true",
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			JwtTTL:    getEnvAsDuration("JWT_TTL", time.Hour),
		},
		Dialogue: DialogueConfig{
			IdleTimeout:  getEnvAsDuration("DIALOGUE_IDLE_TIMEOUT", time.Hour),
			RadiusKm:     getEnvAsFloat("NEARBY_RADIUS_KM", 2),
			QueryTimeout: getEnvAsDuration("DIALOGUE_QUERY_TIMEOUT", 5*time.Second),
			TopLimit:     getEnvAsInt("TOP_PRODUCTS_LIMIT", 5),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) BotEnabled() bool {
	return c.Bot.Token != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings such as "90s" or "1h".
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
