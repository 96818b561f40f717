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

package client

import (
	"context"
	"net/http"
	"net/url"
)

// CreateAuditLog creates a new audit record via the REST API.
func (c *Client) CreateAuditLog(
	ctx context.Context,
	sub AuditSubmission,
) (*AuditEntryResponse, error) {
	resp := &AuditEntryResponse{}

	code, err := c.do(ctx, http.MethodPost, "/audit", nil, sub, &resp.Body)
	if err != nil {
		return nil, err
	}

	resp.StatusCode = code

	return resp, nil
}

// GetAuditLogByID retrieves a specific audit record by ID via the REST API.
func (c *Client) GetAuditLogByID(
	ctx context.Context,
	id string,
) (*AuditEntryResponse, error) {
	resp := &AuditEntryResponse{}

	code, err := c.do(ctx, http.MethodGet, "/audit/"+url.PathEscape(id), nil, nil, &resp.Body)
	if err != nil {
		return nil, err
	}

	resp.StatusCode = code

	return resp, nil
}

// GetAuditLogs retrieves audit records filtered by tenant or actor via the
// REST API.
func (c *Client) GetAuditLogs(
	ctx context.Context,
	tenantID string,
	actor string,
) (*AuditListResponse, error) {
	query := url.Values{}
	if tenantID != "" {
		query.Set("tenantId", tenantID)
	}
	if actor != "" {
		query.Set("actor", actor)
	}

	resp := &AuditListResponse{}

	code, err := c.do(ctx, http.MethodGet, "/audit", query, nil, &resp.Body)
	if err != nil {
		return nil, err
	}

	resp.StatusCode = code

	return resp, nil
}

// LogOutcome records a minimal audit event at the given outcome level via
// the REST API.
func (c *Client) LogOutcome(
	ctx context.Context,
	level string,
	req OutcomeRequest,
) (*OutcomeResponse, error) {
	resp := &OutcomeResponse{}

	code, err := c.do(
		ctx,
		http.MethodPost,
		"/audit/"+url.PathEscape(level),
		nil,
		req,
		&resp.Body,
	)
	if err != nil {
		return nil, err
	}

	resp.StatusCode = code

	return resp, nil
}
