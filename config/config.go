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
	App      AppSection
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Stripe   StripeConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Engine   EngineConfig
}

type AppSection struct {
	Name        string
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	RunMigrations   bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

type AuthConfig struct {
	JWTSecret     string
	Issuer        string
	InternalToken string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EngineConfig holds the business knobs of the booking engine.
type EngineConfig struct {
	FeeRateBps             int64
	RefundBatchSize        int
	WaitlistNotifyWindow   time.Duration
	ReminderLeadTime       time.Duration
	BulkRefundLockTTL      time.Duration
	QueueBackend           string // memory | redis
	QueueBufferSize        int
	NotificationConsumerID string
}

var AppConfig *Config

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !isConfigNotFound(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := bind(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	AppConfig = cfg
	return cfg, nil
}

// a missing .env is fine, the environment still applies
func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func LoadTestConfig() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := bind(v)

	cfg.Database = DatabaseConfig{
		Host:            "localhost",
		Port:            "5433", // 測試 DB 用 5433 port
		User:            "postgres",
		Password:        "postgres",
		DBName:          "test_db",
		SSLMode:         "disable",
		MaxConns:        25,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
		RunMigrations:   true,
	}
	cfg.Redis = RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "event-commerce")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_CONN_LIFETIME", "1h")
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", "30m")
	v.SetDefault("DB_RUN_MIGRATIONS", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	v.SetDefault("STRIPE_SUCCESS_URL", "http://localhost:3000/checkout/success")
	v.SetDefault("STRIPE_CANCEL_URL", "http://localhost:3000/checkout/cancel")

	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_ISSUER", "event-commerce")
	v.SetDefault("INTERNAL_TOKEN", "change-me-internal")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "no-reply@example.com")

	v.SetDefault("FEE_RATE_BPS", 500)
	v.SetDefault("REFUND_BATCH_SIZE", 5)
	v.SetDefault("WAITLIST_NOTIFY_WINDOW", "24h")
	v.SetDefault("REMINDER_LEAD_TIME", "24h")
	v.SetDefault("BULK_REFUND_LOCK_TTL", "10m")
	v.SetDefault("QUEUE_BACKEND", "memory")
	v.SetDefault("QUEUE_BUFFER_SIZE", 1024)
	v.SetDefault("NOTIFICATION_CONSUMER_ID", "")
}

func bind(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENVIRONMENT")
	cfg.App.LogLevel = v.GetString("LOG_LEVEL")

	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")

	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetString("DB_PORT")
	cfg.Database.User = v.GetString("DB_USER")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.DBName = v.GetString("DB_NAME")
	cfg.Database.SSLMode = v.GetString("DB_SSL_MODE")
	cfg.Database.MaxConns = v.GetInt32("DB_MAX_CONNS")
	cfg.Database.MinConns = v.GetInt32("DB_MIN_CONNS")
	cfg.Database.MaxConnLifetime = v.GetDuration("DB_MAX_CONN_LIFETIME")
	cfg.Database.MaxConnIdleTime = v.GetDuration("DB_MAX_CONN_IDLE_TIME")
	cfg.Database.RunMigrations = v.GetBool("DB_RUN_MIGRATIONS")

	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = v.GetString("REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")

	cfg.Stripe.SecretKey = v.GetString("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = v.GetString("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.SuccessURL = v.GetString("STRIPE_SUCCESS_URL")
	cfg.Stripe.CancelURL = v.GetString("STRIPE_CANCEL_URL")

	cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	cfg.Auth.Issuer = v.GetString("JWT_ISSUER")
	cfg.Auth.InternalToken = v.GetString("INTERNAL_TOKEN")

	cfg.SMTP.Host = v.GetString("SMTP_HOST")
	cfg.SMTP.Port = v.GetInt("SMTP_PORT")
	cfg.SMTP.Username = v.GetString("SMTP_USERNAME")
	cfg.SMTP.Password = v.GetString("SMTP_PASSWORD")
	cfg.SMTP.From = v.GetString("SMTP_FROM")

	cfg.Engine.FeeRateBps = v.GetInt64("FEE_RATE_BPS")
	cfg.Engine.RefundBatchSize = v.GetInt("REFUND_BATCH_SIZE")
	cfg.Engine.WaitlistNotifyWindow = v.GetDuration("WAITLIST_NOTIFY_WINDOW")
	cfg.Engine.ReminderLeadTime = v.GetDuration("REMINDER_LEAD_TIME")
	cfg.Engine.BulkRefundLockTTL = v.GetDuration("BULK_REFUND_LOCK_TTL")
	cfg.Engine.QueueBackend = v.GetString("QUEUE_BACKEND")
	cfg.Engine.QueueBufferSize = v.GetInt("QUEUE_BUFFER_SIZE")
	cfg.Engine.NotificationConsumerID = v.GetString("NOTIFICATION_CONSUMER_ID")

	return cfg
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host and name are required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.IsProduction() {
		if c.Auth.JWTSecret == "change-me" || c.Auth.InternalToken == "change-me-internal" {
			return fmt.Errorf("default secrets must be changed in production")
		}
		if c.Stripe.SecretKey == "" || c.Stripe.WebhookSecret == "" {
			return fmt.Errorf("stripe keys are required in production")
		}
	}
	if c.Engine.FeeRateBps < 0 || c.Engine.FeeRateBps > 10000 {
		return fmt.Errorf("fee rate must be within 0..10000 bps, got %d", c.Engine.FeeRateBps)
	}
	if c.Engine.RefundBatchSize <= 0 {
		return fmt.Errorf("refund batch size must be positive")
	}
	switch c.Engine.QueueBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown queue backend %q", c.Engine.QueueBackend)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
