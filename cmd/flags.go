package cmd

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/pkg/config"
	"github.com/spf13/cobra"
)

// serviceFlags adds the flags shared by all subcommands.
func serviceFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "",
		"config file (default ~/.config/mavuno/config.yaml)")
	cmd.PersistentFlags().StringP("url", "u", "",
		"base URL of the prediction service")
	cmd.PersistentFlags().IntP("timeout", "t", 0,
		"call timeout in seconds, 0 means no timeout")
}

// flagOptions converts flags set on the command line to config options.
// Flags that were not set do not override the config file.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("url") {
		url, _ := flags.GetString("url")
		res = append(res, config.OptServiceURL(url))
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetInt("timeout")
		res = append(res, config.OptServiceTimeout(timeout))
	}
	if flags.Changed("out") {
		out, _ := flags.GetString("out")
		res = append(res, config.OptChartPath(out))
		if format := formatFromPath(out); format != "" {
			res = append(res, config.OptChartFormat(format))
		} else {
			slog.Warn("Chart file extension is not png or svg", "path", out)
			gn.Warn(
				"<em>%s</em> is not a png or svg file, "+
					"the chart is written in the configured format", out,
			)
		}
	}
	return res
}

// formatFromPath returns the chart format implied by the file extension,
// or an empty string if the extension is not a chart format.
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg":
		return ext
	default:
		return ""
	}
}
