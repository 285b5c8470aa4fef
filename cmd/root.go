/*
Copyright © 2026 The Mavuno Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/internal/iofs"
	"github.com/mavunowatch/mavuno/internal/iologger"
	app "github.com/mavunowatch/mavuno/pkg"
	"github.com/mavunowatch/mavuno/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// errNoResult is returned by page commands that ended without a usable
// result. The reason is already shown to the user.
var errNoResult = errors.New("request did not produce a result")

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "mavuno",
		Short:   "Mavuno is a command line client of the crop yield prediction service",
		Long: `Mavuno talks to the MavunoWatch crop yield prediction service.

It can:
  - list counties and crops known to the service (metadata)
  - predict the yield of a crop for a cultivated area (predict)
  - draw the historical yield trend of a county and crop (trend)
  - check that the service is running (status)

All predictions are computed by the service.

Configuration precedence (highest to lowest):
  1. CLI flags (--url, --timeout)
  2. Environment variables (MAVUNO_*)
  3. Config file (~/.config/mavuno/config.yaml)
  4. Built-in defaults

Environment Variables:
  MAVUNO_SERVICE_URL        Base URL of the service
  MAVUNO_SERVICE_TIMEOUT    Call timeout in seconds (0 = none)
  MAVUNO_CHART_FORMAT       Trend chart format (png/svg)
  MAVUNO_LOG_LEVEL          Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "mavuno version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for mavuno")

	serviceFlags(rootCmd)

	rootCmd.AddCommand(
		getMetadataCmd(),
		getPredictCmd(),
		getTrendCmd(),
		getStatusCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := config.ConfigFilePath(homeDir)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfgPath = path
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// started above
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", cfgPath,
		"service_url", cfg.Service.URL,
		"timeout", cfg.Service.Timeout,
	)

	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("MAVUNO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Service configuration
	v.BindEnv("service.url", "MAVUNO_SERVICE_URL")
	v.BindEnv("service.timeout", "MAVUNO_SERVICE_TIMEOUT")

	// Chart configuration
	v.BindEnv("chart.format", "MAVUNO_CHART_FORMAT")
	v.BindEnv("chart.width", "MAVUNO_CHART_WIDTH")
	v.BindEnv("chart.height", "MAVUNO_CHART_HEIGHT")

	// Log configuration
	v.BindEnv("log.level", "MAVUNO_LOG_LEVEL")
	v.BindEnv("log.format", "MAVUNO_LOG_FORMAT")
	v.BindEnv("log.destination", "MAVUNO_LOG_DESTINATION")

	v.AutomaticEnv()
}
