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

package export

import (
	"context"

	"github.com/ledgerd-io/ledgerd/internal/audit"
)

// Fetcher returns a batch of audit records starting at offset, plus the
// total count available.
type Fetcher func(ctx context.Context, limit int, offset int) ([]audit.Response, int, error)

// Exporter writes audit records to a destination.
type Exporter interface {
	Open(ctx context.Context) error
	Write(ctx context.Context, record audit.Response) error
	Close(ctx context.Context) error
}

// Result summarizes an export run.
type Result struct {
	// TotalRecords reported by the fetcher.
	TotalRecords int
	// ExportedRecords actually written.
	ExportedRecords int
}
