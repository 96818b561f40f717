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
	"time"

	"github.com/ledgerd-io/ledgerd/internal/audit"
	"github.com/ledgerd-io/ledgerd/internal/sink"
)

// fakeStore implements audit.Store for testing the service facade.
type fakeStore struct {
	createRecord *audit.Record
	createErr    error
	createdSub   *audit.Submission

	getRecord *audit.Record
	getErr    error

	listRecords []audit.Record
	listErr     error
	listTenant  string
	listActor   string
}

func (f *fakeStore) reset() {
	*f = fakeStore{}
}

func (f *fakeStore) Create(
	_ context.Context,
	sub audit.Submission,
) (*audit.Record, error) {
	f.createdSub = &sub
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createRecord != nil {
		return f.createRecord, nil
	}

	return &audit.Record{
		ID:        "generated-id",
		Timestamp: sub.Timestamp,
		Actor:     sub.Actor,
		TenantID:  sub.TenantID,
		Action:    sub.Action,
		Entity:    sub.Entity,
		Status:    sub.Status,
		Metadata:  sub.Metadata,
		CreatedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}, nil
}

func (f *fakeStore) Get(
	_ context.Context,
	_ string,
) (*audit.Record, error) {
	return f.getRecord, f.getErr
}

func (f *fakeStore) ListByTenant(
	_ context.Context,
	tenantID string,
) ([]audit.Record, error) {
	f.listTenant = tenantID
	return f.listRecords, f.listErr
}

func (f *fakeStore) ListByActor(
	_ context.Context,
	actor string,
) ([]audit.Record, error) {
	f.listActor = actor
	return f.listRecords, f.listErr
}

// outcomeStore is a fakeStore that also implements audit.OutcomeLogger.
type outcomeStore struct {
	fakeStore

	outcomeID    string
	outcomeErr   error
	outcomeLevel audit.Level
}

func (f *outcomeStore) LogOutcome(
	_ context.Context,
	level audit.Level,
	_ string,
	_ audit.Action,
	_ string,
	_ string,
	_ map[string]any,
) (string, error) {
	f.outcomeLevel = level
	return f.outcomeID, f.outcomeErr
}

// fakeSink implements sink.Logger for testing the sink-backed store.
type fakeSink struct {
	logID  string
	logErr error
	logSub *sink.Submission

	getEntry *sink.Entry
	getErr   error
	getID    string

	listEntries []sink.Entry
	listErr     error
	listQuery   sink.Query

	severityID  string
	severityErr error
	severity    sink.Severity
}

func (f *fakeSink) Log(
	_ context.Context,
	sub sink.Submission,
) (string, error) {
	f.logSub = &sub
	return f.logID, f.logErr
}

func (f *fakeSink) GetLogByID(
	_ context.Context,
	id string,
) (*sink.Entry, error) {
	f.getID = id
	return f.getEntry, f.getErr
}

func (f *fakeSink) GetLogs(
	_ context.Context,
	q sink.Query,
) ([]sink.Entry, error) {
	f.listQuery = q
	return f.listEntries, f.listErr
}

func (f *fakeSink) LogSuccess(
	_ context.Context,
	_, _, _, _ string,
	_ map[string]any,
) (string, error) {
	f.severity = sink.SeveritySuccess
	return f.severityID, f.severityErr
}

func (f *fakeSink) LogFailure(
	_ context.Context,
	_, _, _, _ string,
	_ map[string]any,
) (string, error) {
	f.severity = sink.SeverityFailure
	return f.severityID, f.severityErr
}

func (f *fakeSink) LogInfo(
	_ context.Context,
	_, _, _, _ string,
	_ map[string]any,
) (string, error) {
	f.severity = sink.SeverityInfo
	return f.severityID, f.severityErr
}

func (f *fakeSink) LogWarning(
	_ context.Context,
	_, _, _, _ string,
	_ map[string]any,
) (string, error) {
	f.severity = sink.SeverityWarning
	return f.severityID, f.severityErr
}

func (f *fakeSink) LogError(
	_ context.Context,
	_, _, _, _ string,
	_ map[string]any,
) (string, error) {
	f.severity = sink.SeverityError
	return f.severityID, f.severityErr
}
