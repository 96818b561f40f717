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

	"github.com/ledgerd-io/ledgerd/internal/cli"
	"github.com/ledgerd-io/ledgerd/internal/client"
)

// printJSON renders any decoded response body as indented JSON.
func printJSON(
	v any,
) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cli.LogFatal(logger, "failed to render JSON", err)
	}

	fmt.Println(string(data))
}

// displayAuditEntry prints a single audit entry as key-value pairs.
func displayAuditEntry(
	entry client.AuditEntry,
) {
	fmt.Println()
	cli.PrintKV("ID", entry.ID)
	cli.PrintKV("Timestamp", entry.Timestamp)
	cli.PrintKV("Actor", entry.Actor, "Tenant", entry.TenantID)
	cli.PrintKV("Action", entry.Action, "Entity", entry.Entity)
	cli.PrintKV("Status", entry.Status)
	if len(entry.Metadata) > 0 {
		cli.PrintKV("Metadata", cli.FormatMetadata(entry.Metadata))
	}
	cli.PrintKV("Created At", entry.CreatedAt)
}
