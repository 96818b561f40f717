// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerd-io/ledgerd/internal/audit"
	"github.com/ledgerd-io/ledgerd/internal/audit/export"
	"github.com/ledgerd-io/ledgerd/internal/cli"
	"github.com/ledgerd-io/ledgerd/internal/client"
)

var (
	auditExportOutput   string
	auditExportType     string
	auditExportTenantID string
	auditExportActor    string
)

// clientAuditExportCmd represents the clientAuditExport command.
var clientAuditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audit log entries to a file",
	Long: `Export audit log entries to a file for long-term retention.

Fetches entries for a tenant or actor via the REST API and writes each
entry as a JSON line (JSONL format).
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		auditHandler := handler.(client.AuditHandler)

		var exporter export.Exporter
		switch auditExportType {
		case "file":
			exporter = export.NewFileExporter(appFs, auditExportOutput)
		default:
			cli.LogFatal(
				logger,
				"unsupported export type",
				fmt.Errorf("type %q is not supported, use \"file\"", auditExportType),
			)
		}

		fetcher := func(
			ctx context.Context,
			_ int,
			offset int,
		) ([]audit.Response, int, error) {
			// The list endpoint returns the full filtered set in one shot.
			if offset > 0 {
				return nil, 0, nil
			}

			resp, err := auditHandler.GetAuditLogs(ctx, auditExportTenantID, auditExportActor)
			if err != nil {
				return nil, 0, err
			}

			if resp.StatusCode != http.StatusOK {
				msg := "unknown error"
				if resp.Body.Error != nil {
					msg = resp.Body.Error.Message
				}
				return nil, 0, fmt.Errorf("listing audit logs: %s", msg)
			}

			records := make([]audit.Response, 0, len(resp.Body.Data))
			for _, entry := range resp.Body.Data {
				records = append(records, audit.Response{
					ID:        entry.ID,
					Timestamp: entry.Timestamp,
					Actor:     entry.Actor,
					TenantID:  entry.TenantID,
					Action:    entry.Action,
					Entity:    entry.Entity,
					Status:    entry.Status,
					Metadata:  entry.Metadata,
					CreatedAt: entry.CreatedAt,
				})
			}

			return records, len(records), nil
		}

		result, err := export.Run(ctx, logger, fetcher, exporter, 0, nil)
		if err != nil {
			cli.LogFatal(logger, "export failed", err)
		}

		fmt.Println()
		cli.PrintKV(
			"Exported", strconv.Itoa(result.ExportedRecords),
			"Total", strconv.Itoa(result.TotalRecords),
		)
		cli.PrintKV("Output", auditExportOutput)
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditExportCmd)
	clientAuditExportCmd.Flags().
		StringVar(&auditExportOutput, "output", "", "Output file path (required)")
	clientAuditExportCmd.Flags().
		StringVar(&auditExportType, "type", "file", "Export backend type")
	clientAuditExportCmd.Flags().
		StringVar(&auditExportTenantID, "tenant-id", "", "Filter by tenant")
	clientAuditExportCmd.Flags().
		StringVar(&auditExportActor, "actor", "", "Filter by actor")
	_ = clientAuditExportCmd.MarkFlagRequired("output")
}
