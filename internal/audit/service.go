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
	"time"

	"github.com/ledgerd-io/ledgerd/internal/validation"
)

// Service is the single entry point for creating and querying audit
// records. It validates submissions, delegates to the configured backend,
// and maps backend results to the public response shape. It holds no state
// beyond the backend it was constructed with.
type Service struct {
	store  Store
	logger *slog.Logger
	// defaultTenantID is stamped on outcome-convenience records, which
	// carry no tenant of their own.
	defaultTenantID string
}

// NewService creates a new Service over the given backend.
func NewService(
	logger *slog.Logger,
	store Store,
	defaultTenantID string,
) *Service {
	return &Service{
		store:           store,
		logger:          logger,
		defaultTenantID: defaultTenantID,
	}
}

// Create validates the submission and persists it through the backend.
// Validation failures are reported before the backend is touched, with
// every violated field enumerated.
func (s *Service) Create(
	ctx context.Context,
	sub Submission,
) (*Response, error) {
	if fields, ok := validation.Struct(sub); !ok {
		return nil, &ValidationError{Fields: fields}
	}

	record, err := s.store.Create(ctx, sub)
	if err != nil {
		return nil, NewCreationError(err)
	}

	s.logger.Info(
		"audit log created",
		slog.String("id", record.ID),
		slog.String("actor", record.Actor),
		slog.String("action", string(record.Action)),
	)

	resp := MapRecord(*record)

	return &resp, nil
}

// Get retrieves a record by id. Absence is reported as a NotFoundError,
// distinct from a failed lookup.
func (s *Service) Get(
	ctx context.Context,
	id string,
) (*Response, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, NewRetrievalError(err)
	}
	if record == nil {
		s.logger.Warn("audit log not found", slog.String("id", id))

		return nil, &NotFoundError{ID: id}
	}

	resp := MapRecord(*record)

	return &resp, nil
}

// List queries by exactly one filter dimension. Supplying neither is
// ErrMissingFilter, supplying both is ErrAmbiguousFilter; no backend call
// is made in either case.
func (s *Service) List(
	ctx context.Context,
	tenantID string,
	actor string,
) ([]Response, error) {
	switch {
	case tenantID == "" && actor == "":
		return nil, ErrMissingFilter
	case tenantID != "" && actor != "":
		return nil, ErrAmbiguousFilter
	case tenantID != "":
		return s.ListByTenant(ctx, tenantID)
	default:
		return s.ListByActor(ctx, actor)
	}
}

// ListByTenant returns all records for the tenant in creation order.
func (s *Service) ListByTenant(
	ctx context.Context,
	tenantID string,
) ([]Response, error) {
	records, err := s.store.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewRetrievalError(err)
	}

	s.logger.Info(
		"audit logs listed",
		slog.String("tenant_id", tenantID),
		slog.Int("count", len(records)),
	)

	return MapRecords(records), nil
}

// ListByActor returns all records for the actor in creation order.
func (s *Service) ListByActor(
	ctx context.Context,
	actor string,
) ([]Response, error) {
	records, err := s.store.ListByActor(ctx, actor)
	if err != nil {
		return nil, NewRetrievalError(err)
	}

	s.logger.Info(
		"audit logs listed",
		slog.String("actor", actor),
		slog.Int("count", len(records)),
	)

	return MapRecords(records), nil
}

// LogOutcome records a minimal audit event for the given level and returns
// the new record id. Backends implementing OutcomeLogger handle the call
// natively; otherwise a minimal record is created through the regular path
// with the status derived from the level.
func (s *Service) LogOutcome(
	ctx context.Context,
	level Level,
	actor string,
	action Action,
	entity string,
	message string,
	metadata map[string]any,
) (string, error) {
	if !level.IsValid() {
		return "", &ValidationError{
			Fields: []string{fmt.Sprintf("level %q is not a known outcome level", level)},
		}
	}

	if ol, ok := s.store.(OutcomeLogger); ok {
		id, err := ol.LogOutcome(ctx, level, actor, action, entity, message, metadata)
		if err != nil {
			return "", NewCreationError(err)
		}

		return id, nil
	}

	sub := Submission{
		Timestamp: nowFn().UTC().Format(time.RFC3339),
		Actor:     actor,
		TenantID:  s.defaultTenantID,
		Action:    action,
		Entity:    entity,
		Status:    StatusForLevel(level),
		Metadata:  metadata,
	}

	if fields, ok := validation.Struct(sub); !ok {
		return "", &ValidationError{Fields: fields}
	}

	record, err := s.store.Create(ctx, sub)
	if err != nil {
		return "", NewCreationError(err)
	}

	return record.ID, nil
}
