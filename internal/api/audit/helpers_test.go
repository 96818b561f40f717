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

	auditsvc "github.com/ledgerd-io/ledgerd/internal/audit"
)

// fakeService implements the handler-facing service interface.
type fakeService struct {
	createResp *auditsvc.Response
	createErr  error
	createdSub *auditsvc.Submission

	getResp *auditsvc.Response
	getErr  error

	listResp []auditsvc.Response
	listErr  error

	outcomeID    string
	outcomeErr   error
	outcomeLevel auditsvc.Level
}

func (f *fakeService) reset() {
	*f = fakeService{}
}

func (f *fakeService) Create(
	_ context.Context,
	sub auditsvc.Submission,
) (*auditsvc.Response, error) {
	f.createdSub = &sub
	return f.createResp, f.createErr
}

func (f *fakeService) Get(
	_ context.Context,
	_ string,
) (*auditsvc.Response, error) {
	return f.getResp, f.getErr
}

func (f *fakeService) List(
	_ context.Context,
	_, _ string,
) ([]auditsvc.Response, error) {
	return f.listResp, f.listErr
}

func (f *fakeService) LogOutcome(
	_ context.Context,
	level auditsvc.Level,
	_ string,
	_ auditsvc.Action,
	_ string,
	_ string,
	_ map[string]any,
) (string, error) {
	f.outcomeLevel = level
	return f.outcomeID, f.outcomeErr
}

// errorEnvelope mirrors the wire shape of failed responses for decoding.
type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}
