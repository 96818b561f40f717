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

package client_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ledgerd-io/ledgerd/internal/client"
	"github.com/ledgerd-io/ledgerd/internal/config"
)

type ClientPublicTestSuite struct {
	suite.Suite

	ctx context.Context

	// Captured by the stub server on each request.
	gotMethod string
	gotPath   string
	gotQuery  string
	gotBody   []byte
}

func (s *ClientPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.gotMethod = ""
	s.gotPath = ""
	s.gotQuery = ""
	s.gotBody = nil
}

// newClient starts a stub server returning the given status and body and
// builds a client pointed at it.
func (s *ClientPublicTestSuite) newClient(
	status int,
	body string,
) (*client.Client, *httptest.Server) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.gotMethod = r.Method
			s.gotPath = r.URL.Path
			s.gotQuery = r.URL.RawQuery
			s.gotBody, _ = io.ReadAll(r.Body)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}),
	)

	appConfig := config.Config{}
	appConfig.API.Client.URL = server.URL

	return client.New(slog.Default(), appConfig), server
}

func (s *ClientPublicTestSuite) TestCreateAuditLog() {
	c, server := s.newClient(http.StatusCreated, `{
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
	}`)
	defer server.Close()

	resp, err := c.CreateAuditLog(s.ctx, client.AuditSubmission{
		Timestamp: "2025-06-15T10:30:00Z",
		Actor:     "alice@example.com",
		TenantID:  "tenant-a",
		Action:    "CREATE_ENTITY",
		Entity:    "user:1234",
		Status:    "SUCCESS",
	})

	s.Require().NoError(err)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.True(resp.Body.Success)
	s.Require().NotNil(resp.Body.Data)
	s.Equal("record-1", resp.Body.Data.ID)

	s.Equal(http.MethodPost, s.gotMethod)
	s.Equal("/audit", s.gotPath)

	var sent client.AuditSubmission
	s.Require().NoError(json.Unmarshal(s.gotBody, &sent))
	s.Equal("alice@example.com", sent.Actor)
}

func (s *ClientPublicTestSuite) TestGetAuditLogByID() {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(resp *client.AuditEntryResponse)
	}{
		{
			name:   "decodes entry on success",
			status: http.StatusOK,
			body: `{
				"success": true,
				"data": {"id": "record-1", "actor": "alice@example.com"},
				"message": "audit log retrieved successfully"
			}`,
			validate: func(resp *client.AuditEntryResponse) {
				s.Equal(http.StatusOK, resp.StatusCode)
				s.Require().NotNil(resp.Body.Data)
				s.Equal("record-1", resp.Body.Data.ID)
				s.Nil(resp.Body.Error)
			},
		},
		{
			name:   "decodes error envelope on 404",
			status: http.StatusNotFound,
			body: `{
				"success": false,
				"error": {
					"message": "audit log not found with id: missing",
					"code": "AUDIT_LOG_NOT_FOUND"
				},
				"timestamp": "2025-06-15T10:30:00Z"
			}`,
			validate: func(resp *client.AuditEntryResponse) {
				s.Equal(http.StatusNotFound, resp.StatusCode)
				s.False(resp.Body.Success)
				s.Require().NotNil(resp.Body.Error)
				s.Equal("AUDIT_LOG_NOT_FOUND", resp.Body.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, server := s.newClient(tt.status, tt.body)
			defer server.Close()

			resp, err := c.GetAuditLogByID(s.ctx, "record-1")

			s.Require().NoError(err)
			s.Equal("/audit/record-1", s.gotPath)
			tt.validate(resp)
		})
	}
}

func (s *ClientPublicTestSuite) TestGetAuditLogs() {
	tests := []struct {
		name      string
		tenantID  string
		actor     string
		wantQuery string
	}{
		{
			name:      "filters by tenant",
			tenantID:  "tenant-a",
			wantQuery: "tenantId=tenant-a",
		},
		{
			name:      "filters by actor",
			actor:     "alice@example.com",
			wantQuery: "actor=alice%40example.com",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, server := s.newClient(http.StatusOK, `{
				"success": true,
				"data": [{"id": "r1"}, {"id": "r2"}],
				"message": "found 2 audit logs"
			}`)
			defer server.Close()

			resp, err := c.GetAuditLogs(s.ctx, tt.tenantID, tt.actor)

			s.Require().NoError(err)
			s.Equal(http.StatusOK, resp.StatusCode)
			s.Len(resp.Body.Data, 2)
			s.Equal("/audit", s.gotPath)
			s.Equal(tt.wantQuery, s.gotQuery)
		})
	}
}

func (s *ClientPublicTestSuite) TestLogOutcome() {
	c, server := s.newClient(http.StatusCreated, `{
		"success": true,
		"data": {"auditId": "record-9"},
		"message": "audit log created successfully"
	}`)
	defer server.Close()

	resp, err := c.LogOutcome(s.ctx, "success", client.OutcomeRequest{
		Actor:  "alice@example.com",
		Action: "ACCESS_RESOURCE",
		Entity: "report:42",
	})

	s.Require().NoError(err)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("record-9", resp.Body.Data.AuditID)
	s.Equal("/audit/success", s.gotPath)
	s.Equal(http.MethodPost, s.gotMethod)
}

func (s *ClientPublicTestSuite) TestGetHealth() {
	c, server := s.newClient(http.StatusOK, `{"status":"ok"}`)
	defer server.Close()

	resp, err := c.GetHealth(s.ctx)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", resp.Status)
	s.Equal("/health", s.gotPath)
}

func (s *ClientPublicTestSuite) TestGetHealthStatus() {
	c, server := s.newClient(http.StatusOK, `{
		"status": "ok",
		"version": "0.1.0",
		"uptime": "1m30s"
	}`)
	defer server.Close()

	resp, err := c.GetHealthStatus(s.ctx)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", resp.Status)
	s.Equal("0.1.0", resp.Version)
	s.Equal("1m30s", resp.Uptime)
	s.Equal("/health/status", s.gotPath)
}

func (s *ClientPublicTestSuite) TestRequestError() {
	appConfig := config.Config{}
	appConfig.API.Client.URL = "http://127.0.0.1:1"

	c := client.New(slog.Default(), appConfig)

	resp, err := c.GetHealth(s.ctx)

	s.Require().Error(err)
	s.Nil(resp)
	s.Contains(err.Error(), "performing request")
}

func TestClientPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ClientPublicTestSuite))
}
