package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Features FeatureConfig
	Mollie   MollieConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	EventTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	SkipAuth  bool
	DevUserId uint
	Domain    string
	Audience  string
	Issuer    string
	JWKSURL   string
}

type FeatureConfig struct {
	UseRepositoryPattern bool
	CacheDriver          string // "memory" or "redis"
	NatsEnabled          bool
	OtelEnabled          bool
}

type MollieConfig struct {
	APIKey               string
	BaseURL              string
	WebhookURL           string
	RedirectURL          string
	SubscriptionAmount   string // decimal string, e.g. "9.95"
	SubscriptionCurrency string
	SubscriptionInterval string // Mollie interval, e.g. "1 month"
	Description          string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	domain := strings.TrimSuffix(strings.TrimPrefix(getEnv("AUTH0_DOMAIN", ""), "https://"), "/")
	issuer := getEnv("AUTH0_ISSUER", "")
	if issuer == "" && domain != "" {
		issuer = "https://" + domain + "/"
	}
	jwksURL := getEnv("AUTH0_JWKS_URL", "")
	if jwksURL == "" && domain != "" {
		jwksURL = "https://" + domain + "/.well-known/jwks.json"
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			EventTopic:         getEnv("EVENT_TOPIC_NAME", "OUDERSCHAPSPLAN_EVENTS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			SkipAuth:  getEnvAsBool("SKIP_AUTH", false),
			DevUserId: uint(getEnvAsInt("DEV_USER_ID", 1)),
			Domain:    domain,
			Audience:  getEnv("AUTH0_AUDIENCE", ""),
			Issuer:    issuer,
			JWKSURL:   jwksURL,
		},
		Features: FeatureConfig{
			UseRepositoryPattern: getEnvAsBool("USE_REPOSITORY_PATTERN", true),
			CacheDriver:          getEnv("CACHE_DRIVER", "memory"),
			NatsEnabled:          getEnvAsBool("NATS_ENABLED", false),
			OtelEnabled:          getEnvAsBool("OTEL_ENABLED", false),
		},
		Mollie: MollieConfig{
			APIKey:               getEnv("MOLLIE_API_KEY", ""),
			BaseURL:              getEnv("MOLLIE_BASE_URL", "https://api.mollie.com/"),
			WebhookURL:           getEnv("WEBHOOK_URL", ""),
			RedirectURL:          getEnv("REDIRECT_URL", "http://localhost:5173/abonnement/bedankt"),
			SubscriptionAmount:   getEnv("SUBSCRIPTION_AMOUNT", "9.95"),
			SubscriptionCurrency: getEnv("SUBSCRIPTION_CURRENCY", "EUR"),
			SubscriptionInterval: getEnv("SUBSCRIPTION_INTERVAL", "1 month"),
			Description:          getEnv("SUBSCRIPTION_DESCRIPTION", "Ouderschapsplan abonnement"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Ouderschapsplan"),
		},
	}

	if cfg.Auth.SkipAuth && cfg.IsProduction() {
		log.Println("[WARN] SKIP_AUTH is ignored in production")
		cfg.Auth.SkipAuth = false
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
