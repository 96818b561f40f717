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

// Package sink defines the external audit-logging facility contract and its
// NATS KeyValue implementation.
package sink

import (
	"context"
	"time"
)

// Severity classifies an entry recorded through a convenience log call.
type Severity string

// Severities accepted by the convenience log operations.
const (
	SeveritySuccess Severity = "success"
	SeverityFailure Severity = "failure"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Submission is the facility's call shape for recording an audit event.
type Submission struct {
	// Timestamp of the audited event; defaults to now when empty.
	Timestamp string
	Actor     string
	TenantID  string
	Action    string
	Entity    string
	Status    string
	Severity  Severity
	Message   string
	Metadata  map[string]any
}

// Entry is the facility's stored representation of an audit event.
type Entry struct {
	ID          string         `json:"id"`
	Timestamp   string         `json:"timestamp"`
	Actor       string         `json:"actor"`
	TenantID    string         `json:"tenantId"`
	Action      string         `json:"action"`
	Entity      string         `json:"entity"`
	Status      string         `json:"status"`
	Severity    Severity       `json:"severity,omitempty"`
	Message     string         `json:"message,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Service     string         `json:"service,omitempty"`
	Environment string         `json:"environment,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Query filters entries by a single dimension. Zero-value fields are
// ignored.
type Query struct {
	TenantID string
	Actor    string
}

// Options configures a facility client.
type Options struct {
	// ServiceName identifies the submitting service on every entry.
	ServiceName string
	// Environment tags entries (e.g. "development", "production").
	Environment string
	// DefaultTenantID is stamped on convenience log calls, which carry no
	// tenant of their own.
	DefaultTenantID string
}

// Logger is the audit-logging facility contract. Log returns only the new
// entry id; callers needing the stored entry fetch it with GetLogByID.
type Logger interface {
	// Log records an audit event and returns its id.
	Log(ctx context.Context, sub Submission) (string, error)
	// GetLogByID retrieves a stored entry, (nil, nil) when absent.
	GetLogByID(ctx context.Context, id string) (*Entry, error)
	// GetLogs returns entries matching the query in creation order.
	GetLogs(ctx context.Context, q Query) ([]Entry, error)
	// LogSuccess records a success-severity event and returns its id.
	LogSuccess(
		ctx context.Context,
		actor, action, entity, message string,
		metadata map[string]any,
	) (string, error)
	// LogFailure records a failure-severity event and returns its id.
	LogFailure(
		ctx context.Context,
		actor, action, entity, message string,
		metadata map[string]any,
	) (string, error)
	// LogInfo records an info-severity event and returns its id.
	LogInfo(
		ctx context.Context,
		actor, action, entity, message string,
		metadata map[string]any,
	) (string, error)
	// LogWarning records a warning-severity event and returns its id.
	LogWarning(
		ctx context.Context,
		actor, action, entity, message string,
		metadata map[string]any,
	) (string, error)
	// LogError records an error-severity event and returns its id.
	LogError(
		ctx context.Context,
		actor, action, entity, message string,
		metadata map[string]any,
	) (string, error)
}

// StatusForSeverity maps a convenience-call severity to the outcome status
// stamped on the entry.
func StatusForSeverity(
	sev Severity,
) string {
	switch sev {
	case SeverityFailure, SeverityError:
		return "FAILURE"
	case SeverityWarning:
		return "PENDING"
	default:
		return "SUCCESS"
	}
}
