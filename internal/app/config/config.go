// Package config собирает настройки сервиса из флагов командной строки и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type ConfigType struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`
	KeyLength       int           `env:"KEY_LENGTH"`
	KeyAttempts     int           `env:"KEY_ATTEMPTS"`
	LogLevel        string        `env:"LOG_LEVEL"`
	TrustedSubnet   string        `env:"TRUSTED_SUBNET"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// NewConfig разбирает args (без имени программы), затем переопределяет значения из окружения.
func NewConfig(args []string) (*ConfigType, error) {
	config := ConfigType{}

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddress, "a", "0.0.0.0:8080", "HTTP server address")
	fs.IntVar(&config.KeyLength, "k", 5, "short key length")
	fs.IntVar(&config.KeyAttempts, "r", 10, "attempts to find a free short key")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.StringVar(&config.TrustedSubnet, "t", "", "CIDR allowed to read /api/internal/stats")
	fs.DurationVar(&config.ShutdownTimeout, "s", 30*time.Second, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации из env: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *ConfigType) validate() error {
	var errs []error
	if c.ServerAddress == "" {
		errs = append(errs, errors.New("server address is empty"))
	}
	if c.KeyLength <= 0 {
		errs = append(errs, fmt.Errorf("key length must be positive, got %d", c.KeyLength))
	}
	if c.KeyAttempts <= 0 {
		errs = append(errs, fmt.Errorf("key attempts must be positive, got %d", c.KeyAttempts))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}
