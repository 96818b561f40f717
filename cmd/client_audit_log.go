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
	auditLogActor    string
	auditLogAction   string
	auditLogEntity   string
	auditLogMessage  string
	auditLogMetadata string
)

// clientAuditLogCmd represents the clientAuditLog command.
var clientAuditLogCmd = &cobra.Command{
	Use:       "log [success|failure|info|warning|error]",
	Short:     "Log an audit event at an outcome level",
	ValidArgs: []string{"success", "failure", "info", "warning", "error"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Log a minimal audit event at the given outcome level.

The server stamps the timestamp, default tenant, and the status implied
by the level. Only the new entry id is returned.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		level := args[0]

		var metadata map[string]any
		if auditLogMetadata != "" {
			if err := json.Unmarshal([]byte(auditLogMetadata), &metadata); err != nil {
				cli.LogFatal(logger, "invalid metadata JSON", err)
			}
		}

		auditHandler := handler.(client.AuditHandler)
		resp, err := auditHandler.LogOutcome(ctx, level, client.OutcomeRequest{
			Actor:    auditLogActor,
			Action:   auditLogAction,
			Entity:   auditLogEntity,
			Message:  auditLogMessage,
			Metadata: metadata,
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

			fmt.Println()
			cli.PrintKV("Audit ID", resp.Body.Data.AuditID)
		default:
			cli.HandleAPIError(resp.Body.Error, resp.StatusCode, logger)
		}
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditLogCmd)

	clientAuditLogCmd.Flags().
		StringVar(&auditLogActor, "actor", "", "Actor performing the action (required)")
	clientAuditLogCmd.Flags().
		StringVar(&auditLogAction, "action", "", "Action performed (required)")
	clientAuditLogCmd.Flags().
		StringVar(&auditLogEntity, "entity", "", "Entity acted upon (required)")
	clientAuditLogCmd.Flags().
		StringVar(&auditLogMessage, "message", "", "Human-readable message")
	clientAuditLogCmd.Flags().
		StringVar(&auditLogMetadata, "metadata", "", "Metadata as a JSON object")

	_ = clientAuditLogCmd.MarkFlagRequired("actor")
	_ = clientAuditLogCmd.MarkFlagRequired("action")
	_ = clientAuditLogCmd.MarkFlagRequired("entity")
}
