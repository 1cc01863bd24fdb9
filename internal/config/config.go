package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/tips/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tips.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultStaticPrefix is the URL prefix for the compiled stylesheet.
	DefaultStaticPrefix = "/static/"

	// DefaultOutput is the default export directory.
	DefaultOutput = "dist"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "10s"

	// DefaultNamespace is the Prometheus namespace and tracer name.
	DefaultNamespace = "tips"
)

// Config represents the complete tips.json configuration.
type Config struct {
	// Name is the deployment name, used in log output.
	Name string `json:"name,omitempty"`

	// Dev switches to development caching and text logs.
	Dev bool `json:"dev,omitempty"`

	// Server contains listener settings.
	Server ServerConfig `json:"server,omitempty"`

	// Render contains page rendering settings.
	Render RenderConfig `json:"render,omitempty"`

	// Static contains stylesheet serving settings.
	Static StaticConfig `json:"static,omitempty"`

	// Log contains logger settings.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Export contains static export targets.
	Export ExportConfig `json:"export,omitempty"`

	configPath string
}

// ServerConfig contains listener settings.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// ShutdownTimeout is how long in-flight requests may take to finish (e.g. "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// RenderConfig contains page rendering settings.
type RenderConfig struct {
	Title  string `json:"title,omitempty"`
	Lang   string `json:"lang,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`
}

// StaticConfig contains stylesheet serving settings.
type StaticConfig struct {
	// Prefix is the URL prefix for fingerprinted assets (default: "/static/").
	Prefix string `json:"prefix,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "json" or "text". Empty picks text in dev, json otherwise.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty"`
}

// ExportConfig contains static export targets.
type ExportConfig struct {
	// Dir is the local export directory.
	Dir string `json:"dir,omitempty"`

	// S3 is used instead of Dir when S3.Bucket is set.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config describes an S3 (or S3-compatible) export target.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty"`
	Region   string `json:"region,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: "tips",
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Render: RenderConfig{
			Title: "Tips",
			Lang:  "en",
		},
		Static: StaticConfig{
			Prefix: DefaultStaticPrefix,
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultNamespace,
		},
		Export: ExportConfig{
			Dir: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for tips.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads tips.json from dir, or returns defaults when the
// file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Code(err) == "E100" {
		return New(), nil
	}
	return cfg, err
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()

	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Render.Title == "" {
		c.Render.Title = d.Render.Title
	}
	if c.Render.Lang == "" {
		c.Render.Lang = d.Render.Lang
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = d.Static.Prefix
	}
	// Prefix must be a rooted directory path
	if !strings.HasPrefix(c.Static.Prefix, "/") {
		c.Static.Prefix = "/" + c.Static.Prefix
	}
	if !strings.HasSuffix(c.Static.Prefix, "/") {
		c.Static.Prefix += "/"
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = d.Tracing.TracerName
	}
	if c.Export.Dir == "" {
		c.Export.Dir = d.Export.Dir
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetailf("server.port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("E102").
			WithDetailf("server.shutdownTimeout %q is not a duration", c.Server.ShutdownTimeout).
			WithSuggestion(`Use a Go duration such as "10s" or "1m"`)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("E102").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "text":
	default:
		return errors.New("E102").
			WithDetailf("log.format %q is not json or text", c.Log.Format)
	}
	if c.Export.S3.Bucket != "" && c.Export.S3.Region == "" {
		return errors.New("E102").
			WithDetail("export.s3.region is required when export.s3.bucket is set")
	}
	return nil
}

// Address returns the listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// LogFormat returns the effective log format.
func (c *Config) LogFormat() string {
	if c.Log.Format != "" {
		return c.Log.Format
	}
	if c.Dev {
		return "text"
	}
	return "json"
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
