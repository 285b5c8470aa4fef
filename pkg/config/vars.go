package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "mavuno"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/mavuno by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ChartsDir returns the directory where trend charts are drawn.
// Returns ~/.local/share/mavuno/charts by default.
func ChartsDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "charts")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/mavuno/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/mavuno/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ChartFilePath returns the default canvas file for the given format.
func ChartFilePath(homeDir, format string) string {
	return filepath.Join(ChartsDir(homeDir), "trend."+format)
}
