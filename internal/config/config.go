package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/history"
	pkglog "cnpj-toolkit/internal/log"
)

// EnvPrefix prefixes every environment override, e.g. CNPJ_SERVER_PORT.
const EnvPrefix = "CNPJ"

type Config struct {
	Server    ServerConfig
	History   HistoryConfig
	Generator GeneratorConfig
	Log       pkglog.Config
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type HistoryConfig struct {
	Capacity int
}

type GeneratorConfig struct {
	DefaultMode string `mapstructure:"default_mode"`
}

// Load reads config.yaml from dir (if present) and applies environment overrides.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// PORT is honoured for platforms that inject it.
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("history.capacity", history.DefaultCapacity)
	v.SetDefault("generator.default_mode", string(domain.ModeAlphanumeric))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.service_name", "cnpj-toolkit")
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive, got %d", c.History.Capacity)
	}
	if _, err := domain.ParseMode(c.Generator.DefaultMode); err != nil {
		return fmt.Errorf("generator.default_mode: %w", err)
	}
	return nil
}

// Mode returns the parsed default generation mode.
func (c *Config) Mode() domain.Mode {
	mode, err := domain.ParseMode(c.Generator.DefaultMode)
	if err != nil {
		return domain.ModeAlphanumeric
	}
	return mode
}
