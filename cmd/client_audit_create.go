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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ledgerd-io/ledgerd/internal/cli"
	"github.com/ledgerd-io/ledgerd/internal/client"
)

var (
	auditCreateTimestamp string
	auditCreateActor     string
	auditCreateTenantID  string
	auditCreateAction    string
	auditCreateEntity    string
	auditCreateStatus    string
	auditCreateMetadata  string
)

// clientAuditCreateCmd represents the clientAuditCreate command.
var clientAuditCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an audit log entry",
	Long: `Create a new audit log entry.

All schema fields are required. Metadata is an optional JSON object.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		var metadata map[string]any
		if auditCreateMetadata != "" {
			if err := json.Unmarshal([]byte(auditCreateMetadata), &metadata); err != nil {
				cli.LogFatal(logger, "invalid metadata JSON", err)
			}
		}

		auditHandler := handler.(client.AuditHandler)
		resp, err := auditHandler.CreateAuditLog(ctx, client.AuditSubmission{
			Timestamp: auditCreateTimestamp,
			Actor:     auditCreateActor,
			TenantID:  auditCreateTenantID,
			Action:    auditCreateAction,
			Entity:    auditCreateEntity,
			Status:    auditCreateStatus,
			Metadata:  metadata,
		})
		if err != nil {
			cli.LogFatal(logger, "API request failed", err)
		}

		switch resp.StatusCode {
		case http.StatusCreated:
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
	clientAuditCmd.AddCommand(clientAuditCreateCmd)

	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateTimestamp, "timestamp", "", "Event timestamp (ISO-8601, required)")
	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateActor, "actor", "", "Actor performing the action (required)")
	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateTenantID, "tenant-id", "", "Tenant the event belongs to (required)")
	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateAction, "action", "", "Action performed (required)")
	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateEntity, "entity", "", "Entity acted upon (required)")
	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateStatus, "status", "", "Outcome status (required)")
	clientAuditCreateCmd.Flags().
		StringVar(&auditCreateMetadata, "metadata", "", "Metadata as a JSON object")

	_ = clientAuditCreateCmd.MarkFlagRequired("timestamp")
	_ = clientAuditCreateCmd.MarkFlagRequired("actor")
	_ = clientAuditCreateCmd.MarkFlagRequired("tenant-id")
	_ = clientAuditCreateCmd.MarkFlagRequired("action")
	_ = clientAuditCreateCmd.MarkFlagRequired("entity")
	_ = clientAuditCreateCmd.MarkFlagRequired("status")
}
