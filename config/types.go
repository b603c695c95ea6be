package config

// Config is the effective client configuration after merging all sources.
// Credentials are deliberately absent: they are only ever supplied
// programmatically, never through files or the environment.
type Config struct {
	BaseURL    string        `mapstructure:"base_url"`
	ClientInfo string        `mapstructure:"client_info"`
	VerifySSL  bool          `mapstructure:"verify_ssl"`
	Timeout    int           `mapstructure:"timeout"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains logging configuration. It is only read from the
// configuration file, not from the environment.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Options controls configuration loading. Non-zero connection fields take
// precedence over every other source.
type Options struct {
	// Explicit values (highest precedence).
	BaseURL    string
	ClientInfo string
	VerifySSL  *bool
	Timeout    int

	// File is the path of a JSON or TOML configuration file. Files named
	// with an unknown extension are parsed as JSON. A missing file is an
	// error.
	File string

	// EnvPrefix is the environment variable prefix (default "OLOG_").
	EnvPrefix string
	// SkipEnv disables reading the environment entirely.
	SkipEnv bool
}
