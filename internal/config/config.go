// Package config loads tipcalc settings from flags, environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/h0rv/tipcalc/internal/sanitize"
)

// EnvPrefix is prepended to every environment override, e.g. TIPCALC_LOCALE.
const EnvPrefix = "TIPCALC"

// Config is the effective tipcalc configuration.
type Config struct {
	Locale        string        `mapstructure:"locale" yaml:"locale"`
	Currency      string        `mapstructure:"currency" yaml:"currency"`
	Presets       []string      `mapstructure:"presets" yaml:"presets"`
	MaxBill       float64       `mapstructure:"max_bill" yaml:"max_bill"`
	MaxPartyCount int64         `mapstructure:"max_party_count" yaml:"max_party_count"`
	ToastDuration time.Duration `mapstructure:"toast_duration" yaml:"toast_duration"`
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string        `mapstructure:"log_file" yaml:"log_file"`
	LinkURL       string        `mapstructure:"link_url" yaml:"link_url"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Locale:        "en-US",
		Currency:      "USD",
		Presets:       []string{"5", "10", "15", "20", "25"},
		MaxBill:       sanitize.DefaultMaxBill,
		MaxPartyCount: sanitize.DefaultMaxPartyCount,
		ToastDuration: 3 * time.Second,
		LogLevel:      "info",
		LinkURL:       "https://t.me/FSCoding",
	}
}

// Limits returns the sanitizer thresholds from the config.
func (c *Config) Limits() sanitize.Limits {
	return sanitize.Limits{MaxBill: c.MaxBill, MaxPartyCount: c.MaxPartyCount}
}

// Load builds the configuration. Precedence: flags > TIPCALC_* env > config file > defaults.
// configFile may be empty, in which case tipcalc.{yaml,toml,json} is searched for in the
// working directory and $HOME/.config/tipcalc. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, string, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("presets", def.Presets)
	v.SetDefault("max_bill", def.MaxBill)
	v.SetDefault("max_party_count", def.MaxPartyCount)
	v.SetDefault("toast_duration", def.ToastDuration)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("link_url", def.LinkURL)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("tipcalc")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tipcalc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, "", err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, v.ConfigFileUsed(), nil
}

// bindFlags binds command-line flags to their config keys. Flag names use dashes.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isConfigKey(key) {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = fmt.Errorf("failed to bind flag --%s: %w", f.Name, bindErr)
		}
	})
	return err
}

func isConfigKey(key string) bool {
	switch key {
	case "locale", "currency", "presets", "max_bill", "max_party_count",
		"toast_duration", "log_level", "log_file", "link_url":
		return true
	}
	return false
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Presets) == 0 {
		return &ConfigError{Field: "presets", Message: "at least one preset is required"}
	}
	for _, p := range c.Presets {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return &ConfigError{Field: "presets", Message: fmt.Sprintf("preset %q is not a number", p)}
		}
		if v < 0 {
			return &ConfigError{Field: "presets", Message: fmt.Sprintf("preset %q is negative", p)}
		}
	}
	if c.MaxBill <= 0 {
		return &ConfigError{Field: "max_bill", Message: "must be positive"}
	}
	if c.MaxPartyCount <= 0 {
		return &ConfigError{Field: "max_party_count", Message: "must be positive"}
	}
	if c.ToastDuration <= 0 {
		return &ConfigError{Field: "toast_duration", Message: "must be positive"}
	}
	if c.Locale == "" {
		return &ConfigError{Field: "locale", Message: "must not be empty"}
	}
	if c.Currency == "" {
		return &ConfigError{Field: "currency", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
