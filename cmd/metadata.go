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
	"fmt"
	"io"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/internal/ioservice"
	"github.com/mavunowatch/mavuno/internal/ioview"
	"github.com/mavunowatch/mavuno/pkg/metadata"
	"github.com/spf13/cobra"
)

// getMetadataCmd returns the metadata command.
func getMetadataCmd() *cobra.Command {
	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "List counties and crops known to the service",
		Long: `Loads the reference vocabulary of the service and prints the
counties and crops in the order the service sends them.

Examples:
  mavuno metadata
  mavuno metadata --url http://10.0.0.5:5000`,
		Aliases: []string{"meta"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMetadata(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return metadataCmd
}

func runMetadata(ctx context.Context, out io.Writer) error {
	svc := ioservice.New(cfg.Service)

	counties := ioview.NewList("Counties")
	crops := ioview.NewList("Crops")

	loader := metadata.New(svc)
	loader.AttachCounties(counties)
	loader.AttachCrops(crops)
	loader.Load(ctx)
	loader.Wait()

	if loader.Vocabulary() == nil {
		return fmt.Errorf("cannot load metadata from %s, see the log for details",
			cfg.Service.URL)
	}

	counties.Print(out)
	crops.Print(out)
	return nil
}
