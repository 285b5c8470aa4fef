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
	"github.com/spf13/cobra"
)

// getStatusCmd returns the status command.
func getStatusCmd() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check that the prediction service is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStatus(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return statusCmd
}

func runStatus(ctx context.Context, out io.Writer) error {
	svc := ioservice.New(cfg.Service)
	res, err := svc.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s\n", cfg.Service.URL, res.Message)
	return nil
}
