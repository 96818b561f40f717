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

package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	countersOnce          sync.Once
	recordsCreatedCounter metric.Int64Counter
)

// initCounters lazily creates the audit counters against the global meter
// provider. Lazy so InitMeter can run first during startup.
func initCounters() {
	countersOnce.Do(func() {
		meter := otel.Meter("ledgerd")

		var err error

		recordsCreatedCounter, err = meter.Int64Counter(
			"ledgerd_audit_records_created_total",
			metric.WithDescription("Number of audit records created"),
		)
		if err != nil {
			recordsCreatedCounter = nil
		}
	})
}

// CountAuditRecordCreated increments the created-records counter.
func CountAuditRecordCreated(
	ctx context.Context,
) {
	initCounters()

	if recordsCreatedCounter == nil {
		return
	}

	recordsCreatedCounter.Add(ctx, 1)
}
