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
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ledgerd-io/ledgerd/internal/audit"
	"github.com/ledgerd-io/ledgerd/internal/sink"
)

type SinkStorePublicTestSuite struct {
	suite.Suite

	sink  *fakeSink
	store *audit.SinkStore
	ctx   context.Context
}

func (s *SinkStorePublicTestSuite) SetupTest() {
	s.sink = &fakeSink{}
	s.store = audit.NewSinkStore(slog.Default(), s.sink)
	s.ctx = context.Background()
}

func (s *SinkStorePublicTestSuite) newEntry(
	id string,
) *sink.Entry {
	return &sink.Entry{
		ID:        id,
		Timestamp: "2025-06-15T10:30:00Z",
		Actor:     "alice@example.com",
		TenantID:  "tenant-a",
		Action:    "CREATE_ENTITY",
		Entity:    "user:1234",
		Status:    "SUCCESS",
		CreatedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func (s *SinkStorePublicTestSuite) TestCreate() {
	sub := audit.Submission{
		Timestamp: "2025-06-15T10:30:00Z",
		Actor:     "alice@example.com",
		TenantID:  "tenant-a",
		Action:    audit.ActionCreateEntity,
		Entity:    "user:1234",
		Status:    audit.StatusSuccess,
	}

	tests := []struct {
		name      string
		setupSink func()
		validate  func(record *audit.Record, err error)
	}{
		{
			name: "submits then fetches the stored entry back",
			setupSink: func() {
				s.sink.logID = "entry-1"
				s.sink.getEntry = s.newEntry("entry-1")
			},
			validate: func(record *audit.Record, err error) {
				s.NoError(err)
				s.Require().NotNil(record)
				s.Equal("entry-1", record.ID)
				s.Equal(audit.ActionCreateEntity, record.Action)
				s.Equal(record.CreatedAt, record.UpdatedAt)
				// The submitted message names the action and entity.
				s.Require().NotNil(s.sink.logSub)
				s.Equal("audit log created for CREATE_ENTITY on user:1234", s.sink.logSub.Message)
				s.Equal("entry-1", s.sink.getID)
			},
		},
		{
			name: "fails when the sink rejects the write",
			setupSink: func() {
				s.sink.logErr = fmt.Errorf("bucket full")
			},
			validate: func(record *audit.Record, err error) {
				s.Nil(record)
				s.Require().Error(err)
				s.Contains(err.Error(), "log audit entry")
				s.Contains(err.Error(), "bucket full")
			},
		},
		{
			name: "fails when the fetch-back errors",
			setupSink: func() {
				s.sink.logID = "entry-2"
				s.sink.getErr = fmt.Errorf("connection lost")
			},
			validate: func(record *audit.Record, err error) {
				s.Nil(record)
				s.Require().Error(err)
				s.Contains(err.Error(), "fetch created audit entry entry-2")
			},
		},
		{
			name: "fails when the created entry is not retrievable",
			setupSink: func() {
				s.sink.logID = "entry-3"
			},
			validate: func(record *audit.Record, err error) {
				s.Nil(record)
				s.Require().Error(err)
				s.Contains(err.Error(), "created audit entry entry-3 is not retrievable")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupSink()
			record, err := s.store.Create(s.ctx, sub)
			tt.validate(record, err)
		})
	}
}

func (s *SinkStorePublicTestSuite) TestGet() {
	tests := []struct {
		name      string
		id        string
		setupSink func()
		validate  func(record *audit.Record, err error)
	}{
		{
			name: "returns mapped record",
			id:   "entry-1",
			setupSink: func() {
				s.sink.getEntry = s.newEntry("entry-1")
			},
			validate: func(record *audit.Record, err error) {
				s.NoError(err)
				s.Require().NotNil(record)
				s.Equal("entry-1", record.ID)
				s.Equal(audit.StatusSuccess, record.Status)
				s.NotNil(record.Metadata)
			},
		},
		{
			name:      "returns nil record when absent",
			id:        "missing",
			setupSink: func() {},
			validate: func(record *audit.Record, err error) {
				s.NoError(err)
				s.Nil(record)
			},
		},
		{
			name: "wraps sink failure",
			id:   "entry-1",
			setupSink: func() {
				s.sink.getErr = fmt.Errorf("connection lost")
			},
			validate: func(record *audit.Record, err error) {
				s.Nil(record)
				s.Require().Error(err)
				s.Contains(err.Error(), "get audit entry")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupSink()
			record, err := s.store.Get(s.ctx, tt.id)
			tt.validate(record, err)
		})
	}
}

func (s *SinkStorePublicTestSuite) TestListByTenant() {
	s.sink.listEntries = []sink.Entry{*s.newEntry("a"), *s.newEntry("b")}

	records, err := s.store.ListByTenant(s.ctx, "tenant-a")

	s.NoError(err)
	s.Require().Len(records, 2)
	s.Equal("a", records[0].ID)
	s.Equal("b", records[1].ID)
	s.Equal(sink.Query{TenantID: "tenant-a"}, s.sink.listQuery)
}

func (s *SinkStorePublicTestSuite) TestListByActor() {
	s.sink.listEntries = []sink.Entry{*s.newEntry("a")}

	records, err := s.store.ListByActor(s.ctx, "alice@example.com")

	s.NoError(err)
	s.Require().Len(records, 1)
	s.Equal(sink.Query{Actor: "alice@example.com"}, s.sink.listQuery)
}

func (s *SinkStorePublicTestSuite) TestListError() {
	s.sink.listErr = fmt.Errorf("connection lost")

	records, err := s.store.ListByTenant(s.ctx, "tenant-a")

	s.Nil(records)
	s.Require().Error(err)
	s.Contains(err.Error(), "list audit entries by tenant")
}

func (s *SinkStorePublicTestSuite) TestLogOutcome() {
	tests := []struct {
		name         string
		level        audit.Level
		wantSeverity sink.Severity
	}{
		{
			name:         "routes success level",
			level:        audit.LevelSuccess,
			wantSeverity: sink.SeveritySuccess,
		},
		{
			name:         "routes failure level",
			level:        audit.LevelFailure,
			wantSeverity: sink.SeverityFailure,
		},
		{
			name:         "routes info level",
			level:        audit.LevelInfo,
			wantSeverity: sink.SeverityInfo,
		},
		{
			name:         "routes warning level",
			level:        audit.LevelWarning,
			wantSeverity: sink.SeverityWarning,
		},
		{
			name:         "routes error level",
			level:        audit.LevelError,
			wantSeverity: sink.SeverityError,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.sink.severityID = "entry-9"

			id, err := s.store.LogOutcome(
				s.ctx,
				tt.level,
				"alice@example.com",
				audit.ActionAccessResource,
				"report:42",
				"nightly export",
				nil,
			)

			s.NoError(err)
			s.Equal("entry-9", id)
			s.Equal(tt.wantSeverity, s.sink.severity)
		})
	}
}

func (s *SinkStorePublicTestSuite) TestLogOutcomeErrors() {
	tests := []struct {
		name      string
		level     audit.Level
		setupSink func()
		wantErr   string
	}{
		{
			name:      "rejects unknown level",
			level:     audit.Level("verbose"),
			setupSink: func() {},
			wantErr:   "unknown outcome level: verbose",
		},
		{
			name:  "wraps sink failure with the level",
			level: audit.LevelWarning,
			setupSink: func() {
				s.sink.severityErr = fmt.Errorf("bucket full")
			},
			wantErr: "log warning outcome",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupSink()

			id, err := s.store.LogOutcome(
				s.ctx,
				tt.level,
				"alice@example.com",
				audit.ActionAccessResource,
				"report:42",
				"nightly export",
				nil,
			)

			s.Empty(id)
			s.Require().Error(err)
			s.Contains(err.Error(), tt.wantErr)
		})
	}
}

func TestSinkStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(SinkStorePublicTestSuite))
}
