package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config represents the h5tdiag configuration
type Config struct {
	Verbose  bool   `mapstructure:"verbose"`
	LogLevel string `mapstructure:"log_level"`
	Color    string `mapstructure:"color"`
}

// loadConfig reads h5tdiag.yaml from dir if it exists, then H5TDIAG_*
// environment variables, then the flags that were set on the command line.
func loadConfig(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "debug")
	v.SetDefault("color", "auto")

	v.SetConfigName("h5tdiag")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("h5tdiag")
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("verbose"); f != nil {
			if err := v.BindPFlag("verbose", f); err != nil {
				return nil, fmt.Errorf("binding verbose flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: want auto, always or never", cfg.Color)
	}
	return nil
}

// logger builds the development logger installed by --verbose.
func (c *Config) logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func (c *Config) applyColor() {
	switch c.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}
