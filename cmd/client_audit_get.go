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

	"github.com/spf13/cobra"

	"github.com/ledgerd-io/ledgerd/internal/cli"
	"github.com/ledgerd-io/ledgerd/internal/client"
)

// clientAuditGetCmd represents the clientAuditGet command.
var clientAuditGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a single audit log entry",
	Long: `Get a single audit log entry by its id.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		auditID, _ := cmd.Flags().GetString("audit-id")

		auditHandler := handler.(client.AuditHandler)
		resp, err := auditHandler.GetAuditLogByID(ctx, auditID)
		if err != nil {
			cli.LogFatal(logger, "failed to get audit log entry", err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			if jsonOutput {
				printJSON(resp.Body)
				return
			}

			if resp.Body.Data == nil {
				cli.LogFatal(logger, "failed response", fmt.Errorf("audit entry response was nil"))
			}

			displayAuditEntry(*resp.Body.Data)
		default:
			cli.HandleAPIError(resp.Body.Error, resp.StatusCode, logger)
		}
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditGetCmd)

	clientAuditGetCmd.PersistentFlags().
		StringP("audit-id", "", "", "Audit entry ID to retrieve")

	_ = clientAuditGetCmd.MarkPersistentFlagRequired("audit-id")
}
