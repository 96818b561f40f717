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
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// newID generates record identifiers. Override in tests.
var newID = uuid.NewString

// nowFn returns the current time. Override in tests.
var nowFn = time.Now

// MemoryStore implements Store with a process-lifetime keyed mapping.
// State is scoped to the store instance; construct once and pass it to the
// service facade.
type MemoryStore struct {
	logger *slog.Logger

	mu      sync.RWMutex
	records map[string]Record
	// order preserves creation order for filtered listing.
	order []string
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore(
	logger *slog.Logger,
) *MemoryStore {
	return &MemoryStore{
		logger:  logger,
		records: make(map[string]Record),
	}
}

// Create assigns a fresh unique id, stamps createdAt and updatedAt with the
// same instant, and stores the record. The write is atomic with respect to
// the keyed mapping.
func (s *MemoryStore) Create(
	_ context.Context,
	sub Submission,
) (*Record, error) {
	metadata := sub.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	for {
		if _, exists := s.records[id]; !exists {
			break
		}
		id = newID()
	}

	now := nowFn()
	record := Record{
		ID:        id,
		Timestamp: sub.Timestamp,
		Actor:     sub.Actor,
		TenantID:  sub.TenantID,
		Action:    sub.Action,
		Entity:    sub.Entity,
		Status:    sub.Status,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.records[id] = record
	s.order = append(s.order, id)

	s.logger.Debug(
		"audit record stored",
		slog.String("id", id),
		slog.String("tenant_id", record.TenantID),
		slog.String("actor", record.Actor),
	)

	return &record, nil
}

// Get retrieves a record by id. Returns (nil, nil) when absent.
func (s *MemoryStore) Get(
	_ context.Context,
	id string,
) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}

	return &record, nil
}

// ListByTenant returns all records for the tenant in creation order. An
// empty slice, not an error, when none match.
func (s *MemoryStore) ListByTenant(
	_ context.Context,
	tenantID string,
) ([]Record, error) {
	return s.filter(func(r Record) bool {
		return r.TenantID == tenantID
	}), nil
}

// ListByActor returns all records for the actor in creation order.
func (s *MemoryStore) ListByActor(
	_ context.Context,
	actor string,
) ([]Record, error) {
	return s.filter(func(r Record) bool {
		return r.Actor == actor
	}), nil
}

// filter walks records in creation order applying the predicate.
func (s *MemoryStore) filter(
	keep func(Record) bool,
) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Record{}
	for _, id := range s.order {
		if r := s.records[id]; keep(r) {
			matched = append(matched, r)
		}
	}

	return matched
}
