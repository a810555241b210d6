// Package config provides the configuration for TeamWallet.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrNilConfig is returned when a nil config is passed where one is required.
var ErrNilConfig = errors.New("nil config")

// HTTPConfig is the HTTP API configuration for the server.
type HTTPConfig struct {
	// ListenAddr is the address on which the HTTP server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`

	// TLSKeyPath is the path to the TLS private key.
	TLSKeyPath string `env:"TLS_KEY_PATH" yaml:"tls_key_path"`

	// TLSCertPath is the path to the TLS certificate.
	TLSCertPath string `env:"TLS_CERT_PATH" yaml:"tls_cert_path"`

	// PublicURL is the public URL of the HTTP server.
	PublicURL string `env:"PUBLIC_URL" yaml:"public_url"`
}

// StatsConfig is the configuration for the stats server.
type StatsConfig struct {
	// ListenAddr is the address on which the stats server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// AuthConfig is the configuration for session tokens.
type AuthConfig struct {
	// SessionSecret signs session JWTs. Generated on first run if empty.
	SessionSecret string `env:"SESSION_SECRET" yaml:"session_secret"`

	// SessionDuration is the session lifetime in seconds.
	SessionDuration int `env:"SESSION_DURATION" yaml:"session_duration"`
}

// ReportConfig is the configuration for the generative report service.
type ReportConfig struct {
	// URL is the endpoint of the report service. Empty disables the feature.
	URL string `env:"URL" yaml:"url"`

	// APIKey authenticates requests to the report service.
	APIKey string `env:"API_KEY" yaml:"api_key"`

	// Timeout is the request timeout in seconds.
	Timeout int `env:"TIMEOUT" yaml:"timeout"`
}

// JobsConfig is the configuration for cron jobs.
type JobsConfig struct {
	// InviteSweep is the cron spec for purging expired invites.
	InviteSweep string `env:"INVITE_SWEEP" yaml:"invite_sweep"`
}

// Config is the configuration for TeamWallet.
type Config struct {
	// Name is the name of the server.
	Name string `env:"NAME" yaml:"name"`

	// HTTP is the configuration for the HTTP server.
	HTTP HTTPConfig `envPrefix:"HTTP_" yaml:"http"`

	// Stats is the configuration for the stats server.
	Stats StatsConfig `envPrefix:"STATS_" yaml:"stats"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DB is the database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Auth is the session token configuration.
	Auth AuthConfig `envPrefix:"AUTH_" yaml:"auth"`

	// Report is the generative report service configuration.
	Report ReportConfig `envPrefix:"REPORT_" yaml:"report"`

	// Jobs is the configuration for cron jobs.
	Jobs JobsConfig `envPrefix:"JOBS_" yaml:"jobs"`

	// DataPath is the path to the directory where TeamWallet will store its data.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	envs := []string{}
	if c == nil {
		return envs
	}

	envs = append(envs, []string{
		fmt.Sprintf("TEAMWALLET_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("TEAMWALLET_NAME=%s", c.Name),
		fmt.Sprintf("TEAMWALLET_HTTP_LISTEN_ADDR=%s", c.HTTP.ListenAddr),
		fmt.Sprintf("TEAMWALLET_HTTP_TLS_KEY_PATH=%s", c.HTTP.TLSKeyPath),
		fmt.Sprintf("TEAMWALLET_HTTP_TLS_CERT_PATH=%s", c.HTTP.TLSCertPath),
		fmt.Sprintf("TEAMWALLET_HTTP_PUBLIC_URL=%s", c.HTTP.PublicURL),
		fmt.Sprintf("TEAMWALLET_STATS_LISTEN_ADDR=%s", c.Stats.ListenAddr),
		fmt.Sprintf("TEAMWALLET_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("TEAMWALLET_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("TEAMWALLET_DB_DRIVER=%s", c.DB.Driver),
		fmt.Sprintf("TEAMWALLET_DB_DATA_SOURCE=%s", c.DB.DataSource),
		fmt.Sprintf("TEAMWALLET_AUTH_SESSION_DURATION=%d", c.Auth.SessionDuration),
		fmt.Sprintf("TEAMWALLET_REPORT_URL=%s", c.Report.URL),
		fmt.Sprintf("TEAMWALLET_REPORT_TIMEOUT=%d", c.Report.Timeout),
		fmt.Sprintf("TEAMWALLET_JOBS_INVITE_SWEEP=%s", c.Jobs.InviteSweep),
	}...)

	return envs
}

// IsDebug returns true if the server is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("TEAMWALLET_DEBUG"))
	return debug
}

// IsVerbose returns true if the server is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("TEAMWALLET_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "TEAMWALLET_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment variables.
// This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	path := c.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err //nolint:wrapcheck
	}

	buf, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, buf, 0o644) // nolint: errcheck, gosec, wrapcheck
}

// DefaultDataPath returns the path to the data directory.
// It uses the TEAMWALLET_DATA_PATH environment variable if set, otherwise it
// uses "data".
func DefaultDataPath() string {
	dp := os.Getenv("TEAMWALLET_DATA_PATH")
	if dp == "" {
		dp = "data"
	}

	return dp
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(c.ConfigPath())
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		Name:     "TeamWallet",
		DataPath: DefaultDataPath(),
		HTTP: HTTPConfig{
			ListenAddr: ":23230",
			PublicURL:  "http://localhost:23230",
		},
		Stats: StatsConfig{
			ListenAddr: "localhost:23233",
		},
		DB: DBConfig{
			Driver:     "sqlite",
			DataSource: "teamwallet.db",
		},
		Auth: AuthConfig{
			SessionDuration: 24 * 60 * 60,
		},
		Report: ReportConfig{
			Timeout: 30,
		},
		Jobs: JobsConfig{
			InviteSweep: "@every 1h",
		},
	}
}

// Validate validates the config.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	// Ensure absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err //nolint:wrapcheck
		}
		c.DataPath = dp
	}

	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.DB.Driver)
	}

	// Relative sqlite paths live under the data directory.
	if c.DB.Driver == "sqlite" && !filepath.IsAbs(c.DB.DataSource) {
		c.DB.DataSource = filepath.Join(c.DataPath, c.DB.DataSource)
	}

	if c.Auth.SessionDuration <= 0 {
		c.Auth.SessionDuration = 24 * 60 * 60
	}

	if c.Report.Timeout <= 0 {
		c.Report.Timeout = 30
	}

	return nil
}
