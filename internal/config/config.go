// Package config holds the server configuration, loaded from YAML and
// overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr         string        `yaml:"http_addr"`
	GRPCAddr         string        `yaml:"grpc_addr"`
	LogLevel         string        `yaml:"log_level"`
	Workers          int           `yaml:"workers"`
	QueueSize        int           `yaml:"queue_size"`
	StrictValidation bool          `yaml:"strict_validation"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	RateLimit        float64       `yaml:"rate_limit"`
	RateBurst        int           `yaml:"rate_burst"`
	Redis            RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Channel  string `yaml:"channel"`
	PoolSize int    `yaml:"pool_size"`
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		GRPCAddr:        ":50051",
		LogLevel:        "info",
		Workers:         10,
		QueueSize:       10000,
		ShutdownTimeout: 5 * time.Second,
		RateLimit:       100,
		RateBurst:       200,
		Redis: RedisConfig{
			Enabled:  true,
			Addr:     "localhost:6379",
			Channel:  "inventory:registrations",
			PoolSize: 100,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("grpc_addr is required"))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("queue_size must be positive, got %d", c.QueueSize))
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		errs = append(errs, errors.New("rate_limit and rate_burst must not be negative"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
		}
		if c.Redis.Channel == "" {
			errs = append(errs, errors.New("redis.channel is required when redis is enabled"))
		}
	}
	return errors.Join(errs...)
}
