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

import "time"

// Response is the public shape returned for a record regardless of which
// backend stored it, so backend substitution stays transparent to callers.
type Response struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Actor     string         `json:"actor"`
	TenantID  string         `json:"tenantId"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt string         `json:"createdAt"`
}

// MapRecord converts a stored record to the public response shape.
func MapRecord(
	r Record,
) Response {
	return Response{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Actor:     r.Actor,
		TenantID:  r.TenantID,
		Action:    string(r.Action),
		Entity:    r.Entity,
		Status:    string(r.Status),
		Metadata:  r.Metadata,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// MapRecords converts records preserving order.
func MapRecords(
	records []Record,
) []Response {
	responses := make([]Response, 0, len(records))
	for _, r := range records {
		responses = append(responses, MapRecord(r))
	}

	return responses
}
