// Package config provides configuration management for mavuno.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Service: url, timeout
//   - Chart: format, width, height
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Chart.Path (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MAVUNO_ prefix with underscores for nesting:
//
//	MAVUNO_SERVICE_URL=http://127.0.0.1:5000
//	MAVUNO_SERVICE_TIMEOUT=0
//	MAVUNO_CHART_FORMAT=svg
//	MAVUNO_LOG_LEVEL=info
package config

// Config represents the complete mavuno configuration.
type Config struct {
	// Service contains settings of the remote prediction service.
	Service ServiceConfig `mapstructure:"service" yaml:"service"`

	// Chart contains settings of the trend chart canvas.
	Chart ChartConfig `mapstructure:"chart" yaml:"chart"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, charts and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ServiceConfig describes how to reach the prediction service.
type ServiceConfig struct {
	// URL is the base URL of the service, without trailing slash.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout in seconds for a single call. Zero means calls never time
	// out, a hung call stays in flight until the process ends.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// ChartConfig contains settings of the trend chart.
type ChartConfig struct {
	// Format of the rendered chart: 'png' or 'svg'.
	Format string `mapstructure:"format" yaml:"format"`

	// Width of the chart in pixels.
	Width int `mapstructure:"width" yaml:"width"`

	// Height of the chart in pixels.
	Height int `mapstructure:"height" yaml:"height"`

	// Path is the canvas file the chart is drawn to.
	// Empty value means the default file in ChartsDir.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Service: ServiceConfig{
			URL: "http://127.0.0.1:5000",
		},
		Chart: ChartConfig{
			Format: "png",
			Width:  800,
			Height: 400,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}

	return res
}

// ChartPath returns the canvas file for the trend chart.
func (c *Config) ChartPath() string {
	if c.Chart.Path != "" {
		return c.Chart.Path
	}
	return ChartFilePath(c.HomeDir, c.Chart.Format)
}
