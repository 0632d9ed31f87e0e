package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sandwich-service/database"
	aws_pkg "sandwich-service/pkg/aws"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the sandwich service.
type Config struct {
	Port   string
	AppEnv string

	DB database.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MenuCacheTTL  time.Duration

	KafkaBrokers     []string
	KafkaEventsTopic string
	SNSTopicARN      string
	SQSQueueURL      string

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	CloudWatchEnabled  bool
	CloudWatchLogGroup string
	UseSecrets         bool
	DBSecretName       string
}

// secretSource is the part of the Secrets Manager client config loading needs.
type secretSource interface {
	GetSecretMap(ctx context.Context, name string) (map[string]string, error)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one exists. With AWS_USE_SECRETS=true the database credentials
// come from Secrets Manager.
func LoadConfig(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	return loadConfig(ctx, func(ctx context.Context) (secretSource, error) {
		awsCfg, err := aws_pkg.LoadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		return aws_pkg.NewSecretsClient(awsCfg), nil
	})
}

func loadConfig(ctx context.Context, newSecrets func(context.Context) (secretSource, error)) (*Config, error) {
	var errs []error

	cfg := &Config{
		Port:   getEnv("PORT", "8000"),
		AppEnv: getEnv("APP_ENV", "development"),
		DB: database.Config{
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     os.Getenv("POSTGRES_DB"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		},
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:       getEnvList("KAFKA_BROKERS", nil),
		KafkaEventsTopic:   getEnv("KAFKA_EVENTS_TOPIC", "sandwich-events"),
		SNSTopicARN:        os.Getenv("SNS_TOPIC_ARN"),
		SQSQueueURL:        os.Getenv("SQS_EVENTS_QUEUE_URL"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CloudWatchLogGroup: getEnv("CLOUDWATCH_LOG_GROUP", "/sandwich-shop/services"),
		DBSecretName:       getEnv("DB_SECRET_NAME", "sandwich/DB_CREDENTIALS"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.MenuCacheTTL, err = getEnvDuration("MENU_CACHE_TTL", 5*time.Minute); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 20); err != nil {
		errs = append(errs, err)
	}
	if cfg.CloudWatchEnabled, err = getEnvBool("CLOUDWATCH_ENABLED", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.UseSecrets, err = getEnvBool("AWS_USE_SECRETS", false); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if cfg.UseSecrets {
		if err := applyDBSecret(ctx, cfg, newSecrets); err != nil {
			return nil, err
		}
	}

	if cfg.DB.User == "" || cfg.DB.Password == "" || cfg.DB.Name == "" || cfg.DB.Host == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	return cfg, nil
}

// applyDBSecret overrides the POSTGRES_* values with the non-empty keys of the
// configured secret.
func applyDBSecret(ctx context.Context, cfg *Config, newSecrets func(context.Context) (secretSource, error)) error {
	sm, err := newSecrets(ctx)
	if err != nil {
		return fmt.Errorf("secrets manager unavailable: %w", err)
	}
	values, err := sm.GetSecretMap(ctx, cfg.DBSecretName)
	if err != nil {
		return fmt.Errorf("failed to load database secret: %w", err)
	}

	for key, dst := range map[string]*string{
		"POSTGRES_USER":     &cfg.DB.User,
		"POSTGRES_PASSWORD": &cfg.DB.Password,
		"POSTGRES_DB":       &cfg.DB.Name,
		"POSTGRES_HOST":     &cfg.DB.Host,
		"POSTGRES_PORT":     &cfg.DB.Port,
	} {
		if v := values[key]; v != "" {
			*dst = v
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
