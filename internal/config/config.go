package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Storage     StorageConfig     `yaml:"storage"     validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Sweeper     SweeperConfig     `yaml:"sweeper"     validate:"required"`
	Booking     BookingConfig     `yaml:"booking"     validate:"required"`
	Admin       AdminConfig       `yaml:"admin"`
	Integration IntegrationConfig `yaml:"integration" validate:"required"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Cloudinary  CloudinaryConfig  `yaml:"cloudinary"`
	Redis       RedisConfig       `yaml:"redis"`
	RateLimit   RateLimitConfig   `yaml:"ratelimit"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"60s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
	// Fixtures seeds users, properties and prices into the memory driver.
	Fixtures string `yaml:"fixtures" env:"STORAGE_FIXTURES"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"hutbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SweeperConfig struct {
	Interval        time.Duration `yaml:"interval"         env:"SWEEPER_INTERVAL"          env-default:"15m"  validate:"required,gt=0"`
	PendingTTL      time.Duration `yaml:"pending_ttl"      env:"SWEEPER_PENDING_TTL"       env-default:"15m"  validate:"required,gt=0"`
	BatchSize       int           `yaml:"batch_size"       env:"SWEEPER_BATCH_SIZE"        env-default:"100"  validate:"min=1"`
	SessionInterval time.Duration `yaml:"session_interval" env:"SWEEPER_SESSION_INTERVAL"  env-default:"1h"   validate:"required,gt=0"`
	SessionMaxIdle  time.Duration `yaml:"session_max_idle" env:"SWEEPER_SESSION_MAX_IDLE"  env-default:"24h"  validate:"required,gt=0"`
	SweepTimeout    time.Duration `yaml:"sweep_timeout"    env:"SWEEPER_SWEEP_TIMEOUT"     env-default:"5m"   validate:"required,gt=0"`

	// Disabled keeps the scheduled sweeps off; manual runs still work.
	Disabled bool `yaml:"disabled" env:"SWEEPER_DISABLED"`
}

type BookingConfig struct {
	AmountTolerance     string  `yaml:"amount_tolerance"     env:"BOOKING_AMOUNT_TOLERANCE"     env-default:"2"   validate:"required,numeric"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold" env:"BOOKING_CONFIDENCE_THRESHOLD" env-default:"0.7" validate:"gte=0,lte=1"`
	PaymentInstructions string  `yaml:"payment_instructions" env:"BOOKING_PAYMENT_INSTRUCTIONS"`
}

func (b BookingConfig) Tolerance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(b.AmountTolerance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("booking.amount_tolerance: %w", err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("booking.amount_tolerance must not be negative")
	}
	return d, nil
}

type AdminConfig struct {
	// UserID receives payment_received notifications.
	UserID   string `yaml:"user_id"   env:"ADMIN_USER_ID"`
	APIToken string `yaml:"api_token" env:"ADMIN_API_TOKEN"`
}

type IntegrationConfig struct {
	Timeout  time.Duration `yaml:"timeout"  env:"INTEGRATION_TIMEOUT"  env-default:"10s"   validate:"required,gt=0"`
	Attempts int           `yaml:"attempts" env:"INTEGRATION_ATTEMPTS" env-default:"3"     validate:"min=1,max=10"`
	Delay    time.Duration `yaml:"delay"    env:"INTEGRATION_DELAY"    env-default:"500ms" validate:"gt=0"`
	Backoff  float64       `yaml:"backoff"  env:"INTEGRATION_BACKOFF"  env-default:"2"     validate:"gte=1"`
}

func (i IntegrationConfig) Strategy() retry.Strategy {
	return retry.Strategy{Attempts: i.Attempts, Delay: i.Delay, Backoff: i.Backoff}
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model"   env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `yaml:"api_key"    env:"CLOUDINARY_API_KEY"`
	APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET"`
	Folder    string `yaml:"folder"     env:"CLOUDINARY_FOLDER" env-default:"payment-screenshots"`
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"24h"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"   env:"RATELIMIT_RPS"   env-default:"5"`
	Burst int     `yaml:"burst" env:"RATELIMIT_BURST" env-default:"20"`
}

func (r RateLimitConfig) Enabled() bool {
	return r.RPS > 0 && r.Burst > 0
}

const DefaultPath = "config/config.yaml"

// Load reads the YAML file at path with env overrides. An empty path falls
// back to CONFIG_PATH and then to DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	if err := cleanenvport.LoadPath(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if _, err := cfg.Booking.Tolerance(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
