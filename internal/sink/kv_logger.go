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

package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ensure KVLogger implements Logger at compile time.
var _ Logger = (*KVLogger)(nil)

// marshalJSON serializes entries. Override in tests.
var marshalJSON = json.Marshal

// newEntryID generates entry identifiers. Override in tests.
var newEntryID = uuid.NewString

// nowFn returns the current time. Override in tests.
var nowFn = time.Now

// KVLogger implements Logger backed by a NATS KeyValue bucket.
type KVLogger struct {
	kv     nats.KeyValue
	logger *slog.Logger
	opts   Options
}

// NewKVLogger creates a new KVLogger.
func NewKVLogger(
	logger *slog.Logger,
	kv nats.KeyValue,
	opts Options,
) *KVLogger {
	return &KVLogger{
		kv:     kv,
		logger: logger,
		opts:   opts,
	}
}

// Log persists an audit entry to the KV bucket and returns its id.
func (l *KVLogger) Log(
	_ context.Context,
	sub Submission,
) (string, error) {
	now := nowFn().UTC()

	timestamp := sub.Timestamp
	if timestamp == "" {
		timestamp = now.Format(time.RFC3339)
	}

	tenantID := sub.TenantID
	if tenantID == "" {
		tenantID = l.opts.DefaultTenantID
	}

	entry := Entry{
		ID:          newEntryID(),
		Timestamp:   timestamp,
		Actor:       sub.Actor,
		TenantID:    tenantID,
		Action:      sub.Action,
		Entity:      sub.Entity,
		Status:      sub.Status,
		Severity:    sub.Severity,
		Message:     sub.Message,
		Metadata:    sub.Metadata,
		Service:     l.opts.ServiceName,
		Environment: l.opts.Environment,
		CreatedAt:   now,
	}

	data, err := marshalJSON(entry)
	if err != nil {
		return "", fmt.Errorf("marshal audit entry: %w", err)
	}

	if _, err := l.kv.Put(entry.ID, data); err != nil {
		return "", fmt.Errorf("put audit entry: %w", err)
	}

	l.logger.Debug(
		"audit entry written",
		slog.String("id", entry.ID),
		slog.String("tenant_id", entry.TenantID),
	)

	return entry.ID, nil
}

// GetLogByID retrieves a single audit entry by id. Returns (nil, nil) when
// the key does not exist.
func (l *KVLogger) GetLogByID(
	_ context.Context,
	id string,
) (*Entry, error) {
	kve, err := l.kv.Get(id)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get audit entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(kve.Value(), &entry); err != nil {
		return nil, fmt.Errorf("unmarshal audit entry: %w", err)
	}

	return &entry, nil
}

// GetLogs returns entries matching the query, oldest first.
func (l *KVLogger) GetLogs(
	_ context.Context,
	q Query,
) ([]Entry, error) {
	keys, err := l.kv.Keys()
	if err != nil {
		// nats.ErrNoKeysFound means the bucket is empty
		if errors.Is(err, nats.ErrNoKeysFound) {
			return []Entry{}, nil
		}

		return nil, fmt.Errorf("list audit keys: %w", err)
	}

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		kve, err := l.kv.Get(key)
		if err != nil {
			l.logger.Warn(
				"failed to get audit entry",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var entry Entry
		if err := json.Unmarshal(kve.Value(), &entry); err != nil {
			l.logger.Warn(
				"failed to unmarshal audit entry",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		if q.TenantID != "" && entry.TenantID != q.TenantID {
			continue
		}
		if q.Actor != "" && entry.Actor != q.Actor {
			continue
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

// LogSuccess records a success-severity event.
func (l *KVLogger) LogSuccess(
	ctx context.Context,
	actor, action, entity, message string,
	metadata map[string]any,
) (string, error) {
	return l.logWithSeverity(ctx, SeveritySuccess, actor, action, entity, message, metadata)
}

// LogFailure records a failure-severity event.
func (l *KVLogger) LogFailure(
	ctx context.Context,
	actor, action, entity, message string,
	metadata map[string]any,
) (string, error) {
	return l.logWithSeverity(ctx, SeverityFailure, actor, action, entity, message, metadata)
}

// LogInfo records an info-severity event.
func (l *KVLogger) LogInfo(
	ctx context.Context,
	actor, action, entity, message string,
	metadata map[string]any,
) (string, error) {
	return l.logWithSeverity(ctx, SeverityInfo, actor, action, entity, message, metadata)
}

// LogWarning records a warning-severity event.
func (l *KVLogger) LogWarning(
	ctx context.Context,
	actor, action, entity, message string,
	metadata map[string]any,
) (string, error) {
	return l.logWithSeverity(ctx, SeverityWarning, actor, action, entity, message, metadata)
}

// LogError records an error-severity event.
func (l *KVLogger) LogError(
	ctx context.Context,
	actor, action, entity, message string,
	metadata map[string]any,
) (string, error) {
	return l.logWithSeverity(ctx, SeverityError, actor, action, entity, message, metadata)
}

// logWithSeverity builds the minimal submission behind the convenience
// operations and records it.
func (l *KVLogger) logWithSeverity(
	ctx context.Context,
	sev Severity,
	actor, action, entity, message string,
	metadata map[string]any,
) (string, error) {
	return l.Log(ctx, Submission{
		Actor:    actor,
		TenantID: l.opts.DefaultTenantID,
		Action:   action,
		Entity:   entity,
		Status:   StatusForSeverity(sev),
		Severity: sev,
		Message:  message,
		Metadata: metadata,
	})
}
