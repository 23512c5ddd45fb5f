// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// HTTP front end
	HTTPHost string `env:"HOST" envDefault:"127.0.0.1"`
	HTTPPort int    `env:"PORT" envDefault:"8080"`

	// RPC front end
	GRPCHost string `env:"CATALOG_GRPC_HOST" envDefault:"0.0.0.0"`
	GRPCPort int    `env:"CATALOG_GRPC_PORT" envDefault:"50051"`

	// Store. An empty DatabaseURL starts the service unconfigured.
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBMaxConnections  int           `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	DBForcePlaintext  bool          `env:"DB_FORCE_PLAINTEXT" envDefault:"false"`
	DBEagerCheck      bool          `env:"DB_EAGER_CHECK" envDefault:"false"`
	DBQueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"0s"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	DBProvisionSchema bool          `env:"DB_PROVISION_SCHEMA" envDefault:"true"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"LOG_FORMAT" envDefault:"json"`
	OTLPEndpoint      string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure      bool          `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName       string        `env:"OTEL_SERVICE_NAME" envDefault:"catalog-service"`
}

// Load reads an optional .env file, then parses and validates the environment.
// Variables already set in the process environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}
	return Parse(env.Options{})
}

// Parse builds a Config from the environment described by opts and validates it.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that the env tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.DBMaxConnections <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNECTIONS must be > 0, got %d", c.DBMaxConnections))
	}
	if err := validPort("PORT", c.HTTPPort); err != nil {
		errs = append(errs, err)
	}
	if err := validPort("CATALOG_GRPC_PORT", c.GRPCPort); err != nil {
		errs = append(errs, err)
	}
	if c.DBQueryTimeout < 0 {
		errs = append(errs, errors.New("DB_QUERY_TIMEOUT must not be negative"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be > 0"))
	}
	return errors.Join(errs...)
}

// StoreConfigured reports whether a store address was supplied.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != ""
}

// HTTPAddr returns the HTTP listen address.
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// GRPCAddr returns the RPC listen address.
func (c *Config) GRPCAddr() string {
	return net.JoinHostPort(c.GRPCHost, strconv.Itoa(c.GRPCPort))
}

func validPort(name string, port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("%s must be between 0 and 65535, got %d", name, port)
	}
	return nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
