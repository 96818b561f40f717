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
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerd-io/ledgerd/internal/cli"
	"github.com/ledgerd-io/ledgerd/internal/client"
)

var (
	auditListTenantID string
	auditListActor    string
)

// clientAuditListCmd represents the clientAuditList command.
var clientAuditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit log entries",
	Long: `List audit log entries filtered by tenant or actor.

Exactly one of --tenant-id or --actor must be provided.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		auditHandler := handler.(client.AuditHandler)
		resp, err := auditHandler.GetAuditLogs(ctx, auditListTenantID, auditListActor)
		if err != nil {
			cli.LogFatal(logger, "failed to get audit logs", err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			if jsonOutput {
				printJSON(resp.Body)
				return
			}

			fmt.Println()
			cli.PrintKV("Total", strconv.Itoa(len(resp.Body.Data)))

			if len(resp.Body.Data) == 0 {
				fmt.Println("  No audit entries found.")
				return
			}

			rows := make([][]string, 0, len(resp.Body.Data))
			for _, entry := range resp.Body.Data {
				rows = append(rows, []string{
					entry.ID,
					entry.Timestamp,
					entry.Actor,
					entry.TenantID,
					entry.Action,
					entry.Entity,
					entry.Status,
				})
			}

			cli.PrintCompactTable([]cli.Section{
				{
					Title: "Audit Entries",
					Headers: []string{
						"ID",
						"TIMESTAMP",
						"ACTOR",
						"TENANT",
						"ACTION",
						"ENTITY",
						"STATUS",
					},
					Rows: rows,
				},
			})
		default:
			cli.HandleAPIError(resp.Body.Error, resp.StatusCode, logger)
		}
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditListCmd)
	clientAuditListCmd.Flags().
		StringVar(&auditListTenantID, "tenant-id", "", "Filter by tenant")
	clientAuditListCmd.Flags().
		StringVar(&auditListActor, "actor", "", "Filter by actor")
}
