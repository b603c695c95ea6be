package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvPrefix is the environment variable prefix used when Options
// does not override it.
const DefaultEnvPrefix = "OLOG_"

// Load builds the effective configuration. Sources are merged with the
// following precedence, highest first:
//
//  1. explicit fields set in opts
//  2. configuration file (opts.File, JSON or TOML)
//  3. environment variables (<prefix>BASE_URL, <prefix>CLIENT_INFO,
//     <prefix>VERIFY_SSL, <prefix>TIMEOUT)
//  4. built-in defaults
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if !opts.SkipEnv {
		applyEnv(v, opts.envPrefix())
	}

	if opts.File != "" {
		if err := readFile(v, opts.File); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	applyOverrides(&cfg, opts)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("client_info", "Go Olog Client")
	v.SetDefault("verify_ssl", false)
	v.SetDefault("timeout", 30)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// applyEnv overlays recognized environment variables onto the defaults
// layer. Viper's own env binding ranks the environment above config files,
// which is the opposite of the precedence this client documents, so the
// values go in as defaults instead: the file layer still wins over them.
func applyEnv(v *viper.Viper, prefix string) {
	if value, ok := os.LookupEnv(prefix + "BASE_URL"); ok {
		v.SetDefault("base_url", value)
	}
	if value, ok := os.LookupEnv(prefix + "CLIENT_INFO"); ok {
		v.SetDefault("client_info", value)
	}
	if value, ok := os.LookupEnv(prefix + "VERIFY_SSL"); ok {
		v.SetDefault("verify_ssl", parseBool(value))
	}
	if value, ok := os.LookupEnv(prefix + "TIMEOUT"); ok {
		if timeout, err := strconv.Atoi(value); err == nil {
			v.SetDefault("timeout", timeout)
		}
	}
}

// readFile merges a JSON or TOML configuration file. The format is chosen
// by extension, falling back to JSON for anything unrecognized.
func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		v.SetConfigType("toml")
	default:
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return nil
}

// applyOverrides applies explicit parameters, the highest-precedence source.
func applyOverrides(cfg *Config, opts Options) {
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.ClientInfo != "" {
		cfg.ClientInfo = opts.ClientInfo
	}
	if opts.VerifySSL != nil {
		cfg.VerifySSL = *opts.VerifySSL
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
}

// parseBool follows the service client convention for boolean environment
// values: true, 1, yes, and on are true, everything else is false.
func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func (o Options) envPrefix() string {
	if o.EnvPrefix != "" {
		return o.EnvPrefix
	}
	return DefaultEnvPrefix
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", cfg.Timeout)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
