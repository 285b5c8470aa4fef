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
	"context"
	"io"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/internal/iochart"
	"github.com/mavunowatch/mavuno/internal/iofs"
	"github.com/mavunowatch/mavuno/internal/ioservice"
	"github.com/mavunowatch/mavuno/internal/ioview"
	"github.com/mavunowatch/mavuno/pkg/chart"
	"github.com/mavunowatch/mavuno/pkg/metadata"
	"github.com/mavunowatch/mavuno/pkg/trend"
	"github.com/mavunowatch/mavuno/pkg/vocab"
	"github.com/spf13/cobra"
)

// getTrendCmd returns the trend command.
func getTrendCmd() *cobra.Command {
	var form trend.Form

	trendCmd := &cobra.Command{
		Use:   "trend",
		Short: "Draw the historical yield trend of a crop in a county",
		Long: `Asks the service for the yield trend of a crop in a county, draws it
as a line chart and prints the trend note.

The chart is written to ~/.local/share/mavuno/charts/trend.png unless
--out is given. The format follows the extension of --out (png or svg),
otherwise the chart.format setting. A failed query leaves the previous
chart file in place.

Examples:
  mavuno trend --county Kisumu --crop Maize
  mavuno trend -c Clark -r Corn -o corn.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(cmd.Context(), cmd.OutOrStdout(), form)
		},
	}

	trendCmd.Flags().StringVarP(
		&form.County, "county", "c", "", "county of the trend",
	)
	trendCmd.Flags().StringVarP(
		&form.Crop, "crop", "r", "", "crop of the trend",
	)
	trendCmd.Flags().StringP(
		"out", "o", "", "chart file (png or svg)",
	)

	return trendCmd
}

func runTrend(ctx context.Context, out io.Writer, form trend.Form) error {
	chartPath := cfg.ChartPath()
	if err := iofs.EnsureParentDir(chartPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	svc := ioservice.New(cfg.Service)
	note := ioview.NewPane(out)
	canvas := iochart.FileCanvas{Path: chartPath}
	renderer := chart.NewRenderer(iochart.New(canvas, cfg.Chart))

	// names are not validated against the vocabulary, a mismatch is only
	// a hint
	loader := metadata.New(svc)
	loader.OnLoaded(func(voc *vocab.Vocabulary) {
		if !voc.HasCounty(form.County) || !voc.HasCrop(form.Crop) {
			slog.Warn("Trend query uses names unknown to the service",
				"county", form.County, "crop", form.Crop)
		}
	})
	loader.Load(ctx)

	ctrl := trend.New(svc, renderer, note)
	err := ctrl.Submit(ctx, form)
	ctrl.Wait()
	loader.Wait()
	if err != nil {
		return errNoResult
	}

	switch ctrl.State() {
	case trend.Success:
		gn.Info("Chart is saved to <em>%s</em>", chartPath)
		return nil
	case trend.Warning:
		return nil
	default:
		return errNoResult
	}
}
