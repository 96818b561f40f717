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

// Package audit provides the audit ledger record schema, storage backends,
// and the service facade.
package audit

import (
	"context"
	"time"
)

// Action is the closed vocabulary of auditable actions.
type Action string

// Auditable actions. Submissions carrying any other value are rejected.
const (
	ActionDeployPackage  Action = "DEPLOY_PACKAGE"
	ActionCreateEntity   Action = "CREATE_ENTITY"
	ActionUpdateEntity   Action = "UPDATE_ENTITY"
	ActionDeleteEntity   Action = "DELETE_ENTITY"
	ActionAccessResource Action = "ACCESS_RESOURCE"
	ActionAuthenticate   Action = "AUTHENTICATE"
	ActionAuthorize      Action = "AUTHORIZE"
)

// Actions lists every member of the action vocabulary.
var Actions = []Action{
	ActionDeployPackage,
	ActionCreateEntity,
	ActionUpdateEntity,
	ActionDeleteEntity,
	ActionAccessResource,
	ActionAuthenticate,
	ActionAuthorize,
}

// IsValid reports whether the action is a member of the closed vocabulary.
func (a Action) IsValid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}

	return false
}

// Status is the closed vocabulary of audit outcome statuses.
type Status string

// Audit outcome statuses.
const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
	StatusPending Status = "PENDING"
)

// Statuses lists every member of the status vocabulary.
var Statuses = []Status{
	StatusSuccess,
	StatusFailure,
	StatusPending,
}

// IsValid reports whether the status is a member of the closed vocabulary.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}

	return false
}

// Submission is a caller-supplied audit record before validation and
// persistence. Timestamp is when the audited event occurred, not when it
// was recorded.
type Submission struct {
	// Timestamp is an ISO-8601 date-time string.
	Timestamp string `json:"timestamp" validate:"required,iso8601"`
	// Actor identifies who or what performed the action.
	Actor string `json:"actor" validate:"required"`
	// TenantID identifies the owning tenant or namespace.
	TenantID string `json:"tenantId" validate:"required"`
	// Action is the audited operation.
	Action Action `json:"action" validate:"required,audit_action"`
	// Entity identifies the object acted upon.
	Entity string `json:"entity" validate:"required"`
	// Status is the outcome of the audited operation.
	Status Status `json:"status" validate:"required,audit_status"`
	// Metadata is an open key-value bag, preserved opaquely.
	Metadata map[string]any `json:"metadata,omitempty" validate:"omitempty"`
}

// Record is the canonical persisted audit entity. Records are append-only:
// ID, CreatedAt, and UpdatedAt are stamped by the backend on creation and
// never change afterwards.
type Record struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Actor     string         `json:"actor"`
	TenantID  string         `json:"tenantId"`
	Action    Action         `json:"action"`
	Entity    string         `json:"entity"`
	Status    Status         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Store is the backend capability interface shared by the in-process
// ledger and the external sink adapter. Get returns (nil, nil) when no
// record exists for the id; absence is a normal outcome, not an error.
type Store interface {
	// Create persists a validated submission and returns the stored record.
	Create(ctx context.Context, sub Submission) (*Record, error)
	// Get retrieves a single record by id.
	Get(ctx context.Context, id string) (*Record, error)
	// ListByTenant returns all records for a tenant in creation order.
	ListByTenant(ctx context.Context, tenantID string) ([]Record, error)
	// ListByActor returns all records for an actor in creation order.
	ListByActor(ctx context.Context, actor string) ([]Record, error)
}

// Level classifies outcome-convenience log calls.
type Level string

// Outcome levels accepted by the convenience log operations.
const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Levels lists every outcome level.
var Levels = []Level{
	LevelSuccess,
	LevelFailure,
	LevelInfo,
	LevelWarning,
	LevelError,
}

// IsValid reports whether the level is a known outcome level.
func (l Level) IsValid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}

	return false
}

// StatusForLevel maps an outcome level to the record status stamped on the
// minimal record a convenience log call produces.
func StatusForLevel(
	level Level,
) Status {
	switch level {
	case LevelFailure, LevelError:
		return StatusFailure
	case LevelWarning:
		return StatusPending
	default:
		return StatusSuccess
	}
}

// OutcomeLogger is the optional backend capability behind the convenience
// log operations. Backends that delegate to an external facility implement
// it natively; others fall back to a minimal Create.
type OutcomeLogger interface {
	// LogOutcome records a minimal audit event and returns the new id.
	LogOutcome(
		ctx context.Context,
		level Level,
		actor string,
		action Action,
		entity string,
		message string,
		metadata map[string]any,
	) (string, error)
}
