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
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ledgerd-io/ledgerd/internal/api"
	auditsvc "github.com/ledgerd-io/ledgerd/internal/audit"
	"github.com/ledgerd-io/ledgerd/internal/config"
)

type CreatePublicTestSuite struct {
	suite.Suite

	service *fakeService
	server  *api.Server
}

func (s *CreatePublicTestSuite) SetupTest() {
	s.service = &fakeService{}
	s.server = api.New(config.Config{}, slog.Default())
	s.server.RegisterHandlers(s.server.GetAuditHandler(s.service))
}

func (s *CreatePublicTestSuite) TestCreateAuditLog() {
	validBody := `{
		"timestamp": "2025-06-15T10:30:00Z",
		"actor": "alice@example.com",
		"tenantId": "tenant-a",
		"action": "CREATE_ENTITY",
		"entity": "user:1234",
		"status": "SUCCESS"
	}`

	tests := []struct {
		name         string
		body         string
		setupService func()
		wantCode     int
		validate     func(body string)
	}{
		{
			name: "creates audit log",
			body: validBody,
			setupService: func() {
				s.service.createResp = &auditsvc.Response{
					ID:        "record-1",
					Timestamp: "2025-06-15T10:30:00Z",
					Actor:     "alice@example.com",
					TenantID:  "tenant-a",
					Action:    "CREATE_ENTITY",
					Entity:    "user:1234",
					Status:    "SUCCESS",
					CreatedAt: "2025-06-15T10:30:01Z",
				}
			},
			wantCode: http.StatusCreated,
			validate: func(body string) {
				s.JSONEq(`{
					"success": true,
					"data": {
						"id": "record-1",
						"timestamp": "2025-06-15T10:30:00Z",
						"actor": "alice@example.com",
						"tenantId": "tenant-a",
						"action": "CREATE_ENTITY",
						"entity": "user:1234",
						"status": "SUCCESS",
						"createdAt": "2025-06-15T10:30:01Z"
					},
					"message": "audit log created successfully"
				}`, body)
			},
		},
		{
			name: "rejects malformed body",
			body: `{"actor": 42}`,
			setupService: func() {},
			wantCode:     http.StatusBadRequest,
			validate: func(body string) {
				var env errorEnvelope
				s.Require().NoError(json.Unmarshal([]byte(body), &env))
				s.False(env.Success)
				s.Equal("AUDIT_VALIDATION_FAILED", env.Error.Code)
				s.Equal("invalid request body", env.Error.Message)
				s.NotEmpty(env.Timestamp)
			},
		},
		{
			name: "returns field details on validation failure",
			body: validBody,
			setupService: func() {
				s.service.createErr = &auditsvc.ValidationError{
					Fields: []string{"actor is required", "status is required"},
				}
			},
			wantCode: http.StatusBadRequest,
			validate: func(body string) {
				var env errorEnvelope
				s.Require().NoError(json.Unmarshal([]byte(body), &env))
				s.Equal("AUDIT_VALIDATION_FAILED", env.Error.Code)
				s.Equal("audit log validation failed", env.Error.Message)

				details, ok := env.Error.Details.([]any)
				s.Require().True(ok)
				s.Len(details, 2)
			},
		},
		{
			name: "returns 500 on backend failure",
			body: validBody,
			setupService: func() {
				s.service.createErr = auditsvc.NewCreationError(fmt.Errorf("bucket unavailable"))
			},
			wantCode: http.StatusInternalServerError,
			validate: func(body string) {
				var env errorEnvelope
				s.Require().NoError(json.Unmarshal([]byte(body), &env))
				s.Equal("AUDIT_CREATION_FAILED", env.Error.Code)
				s.Equal("failed to create audit log", env.Error.Message)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.service.reset()
			tt.setupService()

			req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			s.server.Echo.ServeHTTP(rec, req)

			s.Equal(tt.wantCode, rec.Code)
			tt.validate(rec.Body.String())
		})
	}
}

func TestCreatePublicTestSuite(t *testing.T) {
	suite.Run(t, new(CreatePublicTestSuite))
}
