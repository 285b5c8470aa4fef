package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptServiceURL sets the base URL of the prediction service.
// A trailing slash is removed.
func OptServiceURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("Service URL", s) {
			c.Service.URL = s
		}
	}
}

// OptServiceTimeout sets the timeout of a single call in seconds.
// Zero disables the timeout.
func OptServiceTimeout(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Service Timeout", i) {
			c.Service.Timeout = i
		}
	}
}

// OptChartFormat sets the chart file format.
// Valid values: "png", "svg".
func OptChartFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Chart.Format", s) {
			c.Chart.Format = s
		}
	}
}

// OptChartWidth sets the chart width in pixels.
func OptChartWidth(i int) Option {
	return func(c *Config) {
		if isValidInt("Chart Width", i) {
			c.Chart.Width = i
		}
	}
}

// OptChartHeight sets the chart height in pixels.
func OptChartHeight(i int) Option {
	return func(c *Config) {
		if isValidInt("Chart Height", i) {
			c.Chart.Height = i
		}
	}
}

// OptChartPath sets the canvas file of the trend chart.
// Runtime-only field - not in ToOptions().
func OptChartPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Chart Path", s) {
			c.Chart.Path = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, charts, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
