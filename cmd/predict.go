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

	"github.com/mavunowatch/mavuno/internal/ioservice"
	"github.com/mavunowatch/mavuno/internal/ioview"
	"github.com/mavunowatch/mavuno/pkg/metadata"
	"github.com/mavunowatch/mavuno/pkg/predict"
	"github.com/spf13/cobra"
)

// getPredictCmd returns the predict command.
func getPredictCmd() *cobra.Command {
	var form predict.Form

	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the yield of a crop",
		Long: `Asks the service to predict the yield of a crop for the current year.

The crop must be one of the crops known to the service, the area is the
cultivated area in hectares.

Examples:
  mavuno predict --county Kisumu --crop Maize --area 12.5
  mavuno predict -c Clark -r Corn -a 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd.Context(), cmd.OutOrStdout(), form)
		},
	}

	predictCmd.Flags().StringVarP(
		&form.County, "county", "c", "", "county of the field",
	)
	predictCmd.Flags().StringVarP(
		&form.Crop, "crop", "r", "", "crop to predict",
	)
	predictCmd.Flags().StringVarP(
		&form.Area, "area", "a", "", "cultivated area in hectares",
	)

	return predictCmd
}

func runPredict(ctx context.Context, out io.Writer, form predict.Form) error {
	svc := ioservice.New(cfg.Service)
	pane := ioview.NewPane(out)

	loader := metadata.New(svc)
	loader.Load(ctx)
	// the crop list is needed for the request
	loader.Wait()

	ctrl := predict.New(svc, loader, pane)
	if err := ctrl.Submit(ctx, form); err != nil {
		return errNoResult
	}
	ctrl.Wait()

	switch ctrl.State() {
	case predict.Success, predict.Warning:
		return nil
	default:
		return errNoResult
	}
}
