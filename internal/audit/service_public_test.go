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

package audit_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ledgerd-io/ledgerd/internal/audit"
)

type ServicePublicTestSuite struct {
	suite.Suite

	store   *fakeStore
	service *audit.Service
	ctx     context.Context
}

func (s *ServicePublicTestSuite) SetupTest() {
	s.store = &fakeStore{}
	s.service = audit.NewService(slog.Default(), s.store, "default-tenant")
	s.ctx = context.Background()
}

func (s *ServicePublicTestSuite) newSubmission() audit.Submission {
	return audit.Submission{
		Timestamp: "2025-06-15T10:30:00Z",
		Actor:     "alice@example.com",
		TenantID:  "tenant-a",
		Action:    audit.ActionUpdateEntity,
		Entity:    "user:1234",
		Status:    audit.StatusSuccess,
	}
}

func (s *ServicePublicTestSuite) TestCreate() {
	tests := []struct {
		name       string
		sub        audit.Submission
		setupStore func()
		validate   func(resp *audit.Response, err error)
	}{
		{
			name:       "creates valid submission",
			sub:        s.newSubmission(),
			setupStore: func() {},
			validate: func(resp *audit.Response, err error) {
				s.NoError(err)
				s.Require().NotNil(resp)
				s.Equal("generated-id", resp.ID)
				s.Equal("alice@example.com", resp.Actor)
				s.Equal("UPDATE_ENTITY", resp.Action)
				s.Equal("2025-06-15T10:30:00Z", resp.CreatedAt)
			},
		},
		{
			name:       "enumerates every violated field",
			sub:        audit.Submission{},
			setupStore: func() {},
			validate: func(resp *audit.Response, err error) {
				s.Nil(resp)
				var ve *audit.ValidationError
				s.Require().ErrorAs(err, &ve)
				s.Len(ve.Fields, 6)
				// The backend is never touched on validation failure.
				s.Nil(s.store.createdSub)
			},
		},
		{
			name: "rejects action outside the vocabulary",
			sub: func() audit.Submission {
				sub := s.newSubmission()
				sub.Action = "REBOOT_HOST"
				return sub
			}(),
			setupStore: func() {},
			validate: func(resp *audit.Response, err error) {
				s.Nil(resp)
				var ve *audit.ValidationError
				s.Require().ErrorAs(err, &ve)
				s.Require().Len(ve.Fields, 1)
				s.Contains(ve.Fields[0], "REBOOT_HOST")
			},
		},
		{
			name: "rejects malformed timestamp",
			sub: func() audit.Submission {
				sub := s.newSubmission()
				sub.Timestamp = "next tuesday"
				return sub
			}(),
			setupStore: func() {},
			validate: func(resp *audit.Response, err error) {
				s.Nil(resp)
				var ve *audit.ValidationError
				s.Require().ErrorAs(err, &ve)
				s.Require().Len(ve.Fields, 1)
				s.Contains(ve.Fields[0], "ISO-8601")
			},
		},
		{
			name: "wraps backend failure as creation error",
			sub:  s.newSubmission(),
			setupStore: func() {
				s.store.createErr = fmt.Errorf("bucket unavailable")
			},
			validate: func(resp *audit.Response, err error) {
				s.Nil(resp)
				var ce *audit.CreationError
				s.Require().ErrorAs(err, &ce)
				s.Contains(err.Error(), "failed to create audit log")
				s.Contains(err.Error(), "bucket unavailable")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.reset()
			tt.setupStore()
			resp, err := s.service.Create(s.ctx, tt.sub)
			tt.validate(resp, err)
		})
	}
}

func (s *ServicePublicTestSuite) TestGet() {
	tests := []struct {
		name       string
		id         string
		setupStore func()
		validate   func(resp *audit.Response, err error)
	}{
		{
			name: "returns record",
			id:   "record-1",
			setupStore: func() {
				s.store.getRecord = &audit.Record{
					ID:        "record-1",
					Actor:     "alice@example.com",
					TenantID:  "tenant-a",
					Action:    audit.ActionAuthenticate,
					Status:    audit.StatusSuccess,
					CreatedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
				}
			},
			validate: func(resp *audit.Response, err error) {
				s.NoError(err)
				s.Require().NotNil(resp)
				s.Equal("record-1", resp.ID)
				s.Equal("AUTHENTICATE", resp.Action)
			},
		},
		{
			name:       "reports absence as not found",
			id:         "missing",
			setupStore: func() {},
			validate: func(resp *audit.Response, err error) {
				s.Nil(resp)
				var nfe *audit.NotFoundError
				s.Require().ErrorAs(err, &nfe)
				s.Equal("missing", nfe.ID)
				s.Equal("audit log not found with id: missing", err.Error())
			},
		},
		{
			name: "wraps backend failure as retrieval error",
			id:   "record-1",
			setupStore: func() {
				s.store.getErr = fmt.Errorf("connection refused")
			},
			validate: func(resp *audit.Response, err error) {
				s.Nil(resp)
				var re *audit.RetrievalError
				s.Require().ErrorAs(err, &re)
				s.Contains(err.Error(), "connection refused")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.reset()
			tt.setupStore()
			resp, err := s.service.Get(s.ctx, tt.id)
			tt.validate(resp, err)
		})
	}
}

func (s *ServicePublicTestSuite) TestList() {
	tests := []struct {
		name       string
		tenantID   string
		actor      string
		setupStore func()
		validate   func(responses []audit.Response, err error)
	}{
		{
			name:       "rejects call with no filter",
			setupStore: func() {},
			validate: func(responses []audit.Response, err error) {
				s.Nil(responses)
				s.True(errors.Is(err, audit.ErrMissingFilter))
			},
		},
		{
			name:       "rejects call with both filters",
			tenantID:   "tenant-a",
			actor:      "alice@example.com",
			setupStore: func() {},
			validate: func(responses []audit.Response, err error) {
				s.Nil(responses)
				s.True(errors.Is(err, audit.ErrAmbiguousFilter))
			},
		},
		{
			name:     "lists by tenant",
			tenantID: "tenant-a",
			setupStore: func() {
				s.store.listRecords = []audit.Record{
					{ID: "r1", TenantID: "tenant-a"},
					{ID: "r2", TenantID: "tenant-a"},
				}
			},
			validate: func(responses []audit.Response, err error) {
				s.NoError(err)
				s.Len(responses, 2)
				s.Equal("r1", responses[0].ID)
				s.Equal("tenant-a", s.store.listTenant)
			},
		},
		{
			name:  "lists by actor",
			actor: "alice@example.com",
			setupStore: func() {
				s.store.listRecords = []audit.Record{
					{ID: "r1", Actor: "alice@example.com"},
				}
			},
			validate: func(responses []audit.Response, err error) {
				s.NoError(err)
				s.Len(responses, 1)
				s.Equal("alice@example.com", s.store.listActor)
			},
		},
		{
			name:     "wraps backend failure as retrieval error",
			tenantID: "tenant-a",
			setupStore: func() {
				s.store.listErr = fmt.Errorf("connection refused")
			},
			validate: func(responses []audit.Response, err error) {
				s.Nil(responses)
				var re *audit.RetrievalError
				s.Require().ErrorAs(err, &re)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.reset()
			tt.setupStore()
			responses, err := s.service.List(s.ctx, tt.tenantID, tt.actor)
			tt.validate(responses, err)
		})
	}
}

func (s *ServicePublicTestSuite) TestLogOutcomeFallback() {
	tests := []struct {
		name       string
		level      audit.Level
		setupStore func()
		validate   func(id string, err error)
	}{
		{
			name:       "creates minimal record with default tenant",
			level:      audit.LevelSuccess,
			setupStore: func() {},
			validate: func(id string, err error) {
				s.NoError(err)
				s.Equal("generated-id", id)
				s.Require().NotNil(s.store.createdSub)
				s.Equal("default-tenant", s.store.createdSub.TenantID)
				s.Equal(audit.StatusSuccess, s.store.createdSub.Status)
				s.NotEmpty(s.store.createdSub.Timestamp)
			},
		},
		{
			name:       "maps error level to failure status",
			level:      audit.LevelError,
			setupStore: func() {},
			validate: func(id string, err error) {
				s.NoError(err)
				s.Equal(audit.StatusFailure, s.store.createdSub.Status)
			},
		},
		{
			name:       "maps warning level to pending status",
			level:      audit.LevelWarning,
			setupStore: func() {},
			validate: func(id string, err error) {
				s.NoError(err)
				s.Equal(audit.StatusPending, s.store.createdSub.Status)
			},
		},
		{
			name:       "rejects unknown level",
			level:      audit.Level("verbose"),
			setupStore: func() {},
			validate: func(id string, err error) {
				s.Empty(id)
				var ve *audit.ValidationError
				s.Require().ErrorAs(err, &ve)
				s.Contains(ve.Fields[0], `level "verbose" is not a known outcome level`)
				s.Nil(s.store.createdSub)
			},
		},
		{
			name:  "wraps backend failure as creation error",
			level: audit.LevelInfo,
			setupStore: func() {
				s.store.createErr = fmt.Errorf("bucket unavailable")
			},
			validate: func(id string, err error) {
				s.Empty(id)
				var ce *audit.CreationError
				s.Require().ErrorAs(err, &ce)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.reset()
			tt.setupStore()
			id, err := s.service.LogOutcome(
				s.ctx,
				tt.level,
				"alice@example.com",
				audit.ActionAccessResource,
				"report:42",
				"nightly export",
				nil,
			)
			tt.validate(id, err)
		})
	}
}

func (s *ServicePublicTestSuite) TestLogOutcomeDelegation() {
	tests := []struct {
		name       string
		level      audit.Level
		setupStore func(store *outcomeStore)
		validate   func(store *outcomeStore, id string, err error)
	}{
		{
			name:  "delegates to outcome-capable backend",
			level: audit.LevelFailure,
			setupStore: func(store *outcomeStore) {
				store.outcomeID = "sink-id-1"
			},
			validate: func(store *outcomeStore, id string, err error) {
				s.NoError(err)
				s.Equal("sink-id-1", id)
				s.Equal(audit.LevelFailure, store.outcomeLevel)
				// The regular create path is bypassed entirely.
				s.Nil(store.createdSub)
			},
		},
		{
			name:  "wraps delegation failure as creation error",
			level: audit.LevelSuccess,
			setupStore: func(store *outcomeStore) {
				store.outcomeErr = fmt.Errorf("sink unavailable")
			},
			validate: func(_ *outcomeStore, id string, err error) {
				s.Empty(id)
				var ce *audit.CreationError
				s.Require().ErrorAs(err, &ce)
				s.Contains(err.Error(), "sink unavailable")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			store := &outcomeStore{}
			tt.setupStore(store)
			service := audit.NewService(slog.Default(), store, "default-tenant")

			id, err := service.LogOutcome(
				s.ctx,
				tt.level,
				"alice@example.com",
				audit.ActionAccessResource,
				"report:42",
				"nightly export",
				nil,
			)
			tt.validate(store, id, err)
		})
	}
}

func TestServicePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ServicePublicTestSuite))
}
