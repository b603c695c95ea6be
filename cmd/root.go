package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/config"
	"github.com/sligara7/go-olog/olog"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *olog.Client

	// Persistent connection flags
	serverURL string
	username  string
	password  string
	envPrefix string
	insecure  bool
	timeout   int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ologctl",
	Short: "A command line client for the Phoebus Olog service",
	Long: `ologctl is a CLI for the Phoebus Olog electronic logbook service.
It covers the full REST surface: log entries, logbooks, tags, properties,
levels, templates, and file attachments.

Connection settings are merged from flags, an optional JSON/TOML config
file, and OLOG_* environment variables, in that order of precedence.
Credentials are only ever taken from flags.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version information shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON or TOML)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "url", "", "Olog service base URL")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "username for basic auth")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "password for basic auth")
	rootCmd.PersistentFlags().StringVar(&envPrefix, "env-prefix", config.DefaultEnvPrefix, "environment variable prefix")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 0, "request timeout in seconds")
}

// initializeApp loads the configuration and creates the Olog client
func initializeApp(cmd *cobra.Command, args []string) error {
	opts := config.Options{
		File:      cfgFile,
		EnvPrefix: envPrefix,
		BaseURL:   serverURL,
		Timeout:   timeout,
	}
	if cmd.Flags().Changed("insecure") && insecure {
		verify := false
		opts.VerifySSL = &verify
	}

	var err error
	cfg, err = config.Load(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	clientOpts := []olog.Option{
		olog.WithClientInfo(cfg.ClientInfo),
		olog.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
	}
	if !cfg.VerifySSL {
		clientOpts = append(clientOpts, olog.WithInsecureSkipVerify())
	}

	client, err = olog.NewClient(cfg.BaseURL, logger, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create Olog client: %w", err)
	}

	if username != "" {
		client.SetBasicAuth(username, password)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printJSON pretty-prints a value to stdout.
func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
