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

package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerd-io/ledgerd/internal/sink"
)

// ensure SinkStore implements Store and OutcomeLogger at compile time.
var (
	_ Store         = (*SinkStore)(nil)
	_ OutcomeLogger = (*SinkStore)(nil)
)

// SinkStore implements Store by delegating to an external audit-logging
// facility. Creation is two-phase: the facility returns only an id, so the
// stored entry is fetched back before the create is considered complete.
// If that fetch fails the create fails, even though the facility accepted
// the write; the orphaned remote entry is an accepted trade-off.
type SinkStore struct {
	sink   sink.Logger
	logger *slog.Logger
}

// NewSinkStore creates a new SinkStore.
func NewSinkStore(
	logger *slog.Logger,
	s sink.Logger,
) *SinkStore {
	return &SinkStore{
		sink:   s,
		logger: logger,
	}
}

// Create submits the record to the facility, then fetches it back by id.
func (s *SinkStore) Create(
	ctx context.Context,
	sub Submission,
) (*Record, error) {
	id, err := s.sink.Log(ctx, sink.Submission{
		Timestamp: sub.Timestamp,
		Actor:     sub.Actor,
		TenantID:  sub.TenantID,
		Action:    string(sub.Action),
		Entity:    sub.Entity,
		Status:    string(sub.Status),
		Message:   fmt.Sprintf("audit log created for %s on %s", sub.Action, sub.Entity),
		Metadata:  sub.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("log audit entry: %w", err)
	}

	entry, err := s.sink.GetLogByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch created audit entry %s: %w", id, err)
	}
	if entry == nil {
		return nil, fmt.Errorf("created audit entry %s is not retrievable", id)
	}

	s.logger.Debug(
		"audit record created via sink",
		slog.String("id", id),
	)

	record := mapEntryToRecord(*entry)

	return &record, nil
}

// Get retrieves a record by id. Returns (nil, nil) when absent.
func (s *SinkStore) Get(
	ctx context.Context,
	id string,
) (*Record, error) {
	entry, err := s.sink.GetLogByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get audit entry: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	record := mapEntryToRecord(*entry)

	return &record, nil
}

// ListByTenant returns all records for the tenant in creation order.
func (s *SinkStore) ListByTenant(
	ctx context.Context,
	tenantID string,
) ([]Record, error) {
	entries, err := s.sink.GetLogs(ctx, sink.Query{TenantID: tenantID})
	if err != nil {
		return nil, fmt.Errorf("list audit entries by tenant: %w", err)
	}

	return mapEntriesToRecords(entries), nil
}

// ListByActor returns all records for the actor in creation order.
func (s *SinkStore) ListByActor(
	ctx context.Context,
	actor string,
) ([]Record, error) {
	entries, err := s.sink.GetLogs(ctx, sink.Query{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("list audit entries by actor: %w", err)
	}

	return mapEntriesToRecords(entries), nil
}

// LogOutcome delegates to the facility's convenience operation for the
// level, returning only the new entry id.
func (s *SinkStore) LogOutcome(
	ctx context.Context,
	level Level,
	actor string,
	action Action,
	entity string,
	message string,
	metadata map[string]any,
) (string, error) {
	var fn func(
		ctx context.Context,
		actor, action, entity, message string,
		metadata map[string]any,
	) (string, error)

	switch level {
	case LevelSuccess:
		fn = s.sink.LogSuccess
	case LevelFailure:
		fn = s.sink.LogFailure
	case LevelInfo:
		fn = s.sink.LogInfo
	case LevelWarning:
		fn = s.sink.LogWarning
	case LevelError:
		fn = s.sink.LogError
	default:
		return "", fmt.Errorf("unknown outcome level: %s", level)
	}

	id, err := fn(ctx, actor, string(action), entity, message, metadata)
	if err != nil {
		return "", fmt.Errorf("log %s outcome: %w", level, err)
	}

	return id, nil
}

// mapEntryToRecord converts a facility entry to the canonical record shape.
func mapEntryToRecord(
	e sink.Entry,
) Record {
	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return Record{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Actor:     e.Actor,
		TenantID:  e.TenantID,
		Action:    Action(e.Action),
		Entity:    e.Entity,
		Status:    Status(e.Status),
		Metadata:  metadata,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.CreatedAt,
	}
}

// mapEntriesToRecords converts facility entries preserving order.
func mapEntriesToRecords(
	entries []sink.Entry,
) []Record {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, mapEntryToRecord(e))
	}

	return records
}
