package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "Go Olog Client", cfg.ClientInfo)
	assert.False(t, cfg.VerifySSL)
	assert.Equal(t, 30, cfg.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OLOG_BASE_URL", "https://env.example.com")
	t.Setenv("OLOG_CLIENT_INFO", "env client")
	t.Setenv("OLOG_VERIFY_SSL", "true")
	t.Setenv("OLOG_TIMEOUT", "60")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "env client", cfg.ClientInfo)
	assert.True(t, cfg.VerifySSL)
	assert.Equal(t, 60, cfg.Timeout)
}

func TestLoadCustomEnvPrefix(t *testing.T) {
	t.Setenv("MYAPP_BASE_URL", "https://myapp.example.com")
	t.Setenv("OLOG_BASE_URL", "https://wrong.example.com")

	cfg, err := Load(Options{EnvPrefix: "MYAPP_"})
	require.NoError(t, err)
	assert.Equal(t, "https://myapp.example.com", cfg.BaseURL)
}

func TestSkipEnv(t *testing.T) {
	t.Setenv("OLOG_BASE_URL", "https://env.example.com")

	cfg, err := Load(Options{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestEnvBoolParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"banana", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("OLOG_VERIFY_SSL", tt.value)
			cfg, err := Load(Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.VerifySSL)
		})
	}
}

func TestEnvInvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("OLOG_TIMEOUT", "not-a-number")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timeout, "unparsable timeout keeps the default")
}

func TestLoadFromJSONFile(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
		"base_url": "https://file.example.com:8443",
		"client_info": "file client",
		"verify_ssl": true,
		"timeout": 120
	}`)

	cfg, err := Load(Options{File: path, SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com:8443", cfg.BaseURL)
	assert.Equal(t, "file client", cfg.ClientInfo)
	assert.True(t, cfg.VerifySSL)
	assert.Equal(t, 120, cfg.Timeout)
}

func TestLoadFromTOMLFile(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
base_url = "https://toml.example.com"
timeout = 45

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(Options{File: path, SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "https://toml.example.com", cfg.BaseURL)
	assert.Equal(t, 45, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestUnknownExtensionParsedAsJSON(t *testing.T) {
	path := writeConfigFile(t, "config.conf", `{"base_url": "https://conf.example.com"}`)

	cfg, err := Load(Options{File: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "https://conf.example.com", cfg.BaseURL)
}

func TestMissingFileIsError(t *testing.T) {
	_, err := Load(Options{File: "/nonexistent/config.json", SkipEnv: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestMalformedFileIsError(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{not json`)

	_, err := Load(Options{File: path, SkipEnv: true})
	require.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	filePath := writeConfigFile(t, "config.json", `{"base_url": "https://file.example.com", "timeout": 90}`)
	verify := true

	tests := []struct {
		name     string
		opts     Options
		env      map[string]string
		wantURL  string
		wantInfo string
	}{
		{
			name:    "defaults only",
			opts:    Options{SkipEnv: true},
			wantURL: "http://localhost:8080",
		},
		{
			name:    "env beats defaults",
			opts:    Options{},
			env:     map[string]string{"OLOG_BASE_URL": "https://env.example.com"},
			wantURL: "https://env.example.com",
		},
		{
			name:    "file beats env",
			opts:    Options{File: filePath},
			env:     map[string]string{"OLOG_BASE_URL": "https://env.example.com"},
			wantURL: "https://file.example.com",
		},
		{
			name:    "explicit beats file and env",
			opts:    Options{File: filePath, BaseURL: "https://explicit.example.com"},
			env:     map[string]string{"OLOG_BASE_URL": "https://env.example.com"},
			wantURL: "https://explicit.example.com",
		},
		{
			name:     "sources merge per key",
			opts:     Options{File: filePath, ClientInfo: "explicit client"},
			env:      map[string]string{"OLOG_CLIENT_INFO": "env client"},
			wantURL:  "https://file.example.com",
			wantInfo: "explicit client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			cfg, err := Load(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, cfg.BaseURL)
			if tt.wantInfo != "" {
				assert.Equal(t, tt.wantInfo, cfg.ClientInfo)
			}
		})
	}

	t.Run("explicit verify_ssl override", func(t *testing.T) {
		cfg, err := Load(Options{SkipEnv: true, VerifySSL: &verify})
		require.NoError(t, err)
		assert.True(t, cfg.VerifySSL)
	})
}

func TestCredentialsNeverRecognized(t *testing.T) {
	// Credential-looking environment variables and file keys must not leak
	// into the configuration; the Config type has no credential fields.
	t.Setenv("OLOG_USERNAME", "alice")
	t.Setenv("OLOG_PASSWORD", "secret")

	path := writeConfigFile(t, "config.json", `{
		"base_url": "https://file.example.com",
		"username": "bob",
		"password": "hunter2"
	}`)

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.BaseURL)
	// Nothing else to assert structurally: Config simply cannot carry them.
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.BaseURL = "" },
			wantErr: "base_url is required",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: "timeout must be positive",
		},
		{
			name:    "bad logging level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				BaseURL: "http://localhost:8080",
				Timeout: 30,
				Logging: LoggingConfig{Level: "info", Format: "console"},
			}
			tt.mutate(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
