package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	defaultLeadTimeMinutes = 120
	defaultServiceFee      = 50
)

type Config struct {
	Server   Server   `envconfig:"SERVER"`
	App      App      `envconfig:"APP"`
	Booking  Booking  `envconfig:"BOOKING"`
	Cache    Cache    `envconfig:"CACHE"`
	DB       Database `envconfig:"DB"`
	External External `envconfig:"EXTERNAL"`
}

type Server struct {
	Env      string `envconfig:"ENV"       default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT"      default:"8080"`
	Host     string `envconfig:"HOST"`
	Shutdown struct {
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
	} `envconfig:"SHUTDOWN"`
}

type App struct {
	Name        string      `envconfig:"APP_NAME"`
	Timezone    string      `envconfig:"TIMEZONE" default:"Africa/Porto-Novo"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
	APIKey      string      `envconfig:"API_KEY"`
}

type CORS struct {
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	Enable           bool     `envconfig:"ENABLE"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
}

// Booking holds the business rules of the intention booking workflow.
type Booking struct {
	LeadTimeMinutes int  `envconfig:"LEAD_TIME_MINUTES"`
	ServiceFee      int  `envconfig:"SERVICE_FEE"`
	StrictMassType  bool `envconfig:"STRICT_MASS_TYPE"`
}

// LeadTime is the minimum delay between submission and the first celebration.
func (b Booking) LeadTime() time.Duration {
	if b.LeadTimeMinutes <= 0 {
		return defaultLeadTimeMinutes * time.Minute
	}

	return time.Duration(b.LeadTimeMinutes) * time.Minute
}

// Fee is the fixed service fee added to every offering.
func (b Booking) Fee() int {
	if b.ServiceFee <= 0 {
		return defaultServiceFee
	}

	return b.ServiceFee
}

type Cache struct {
	Redis struct {
		Primary Redis `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
	TTL int `envconfig:"TTL" default:"300"`
}

type Redis struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type Database struct {
	Postgres Postgres `envconfig:"POSTGRES"`
}

type Postgres struct {
	MaxRetry       int          `envconfig:"MAX_RETRY"       default:"3"`
	RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME" default:"2"`
	MigrationTable string       `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
	AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
	Prefix         string       `envconfig:"PREFIX"`
	Read           PostgresConn `envconfig:"READ"`
	Write          PostgresConn `envconfig:"WRITE"`
}

// PostgresConn describes one connection pool. Read and write may point at
// the same server.
type PostgresConn struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type External struct {
	Otel struct {
		Endpoint string `envconfig:"ENDPOINT"`
	} `envconfig:"OTEL"`
}

var errInvalidBooking = errors.New("invalid booking configuration")

// Validate rejects settings that would make every booking fail.
func (c *Config) Validate() error {
	if c.Booking.LeadTimeMinutes < 0 {
		return fmt.Errorf("%w: lead time must not be negative", errInvalidBooking)
	}

	if c.Booking.ServiceFee < 0 {
		return fmt.Errorf("%w: service fee must not be negative", errInvalidBooking)
	}

	return nil
}

// Load reads the optional dotenv files into the environment, then decodes it.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var (
	conf    *Config
	once    sync.Once
	loadErr error
)

func Init() error {
	once.Do(func() {
		conf, loadErr = Load(".env")
		if loadErr == nil {
			log.Info().Msg("Service configuration initialized successfully")
		}
	})

	return loadErr
}

func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return conf
}
