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

package config

import (
	"fmt"
	"strings"

	"github.com/ledgerd-io/ledgerd/internal/validation"
)

// Defaults applied when config values are unset.
const (
	// DefaultBackend is the ledger backend used when none is configured.
	DefaultBackend = "memory"
	// DefaultTenantID tags outcome-convenience records with no tenant.
	DefaultTenantID = "default-tenant"
	// DefaultServiceName identifies this service on sink entries.
	DefaultServiceName = "ledgerd"
)

// Validate checks the configuration against its schema tags and applies
// defaults for unset values.
func Validate(
	cfg *Config,
) error {
	if cfg.Audit.Backend == "" {
		cfg.Audit.Backend = DefaultBackend
	}
	if cfg.Audit.DefaultTenantID == "" {
		cfg.Audit.DefaultTenantID = DefaultTenantID
	}
	if cfg.Audit.ServiceName == "" {
		cfg.Audit.ServiceName = DefaultServiceName
	}

	if msgs, ok := validation.Struct(cfg); !ok {
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	return nil
}
