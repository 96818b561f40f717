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

package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Membership checks for the audit vocabularies, injected by the audit
// package at registration time to keep this package vocabulary-agnostic.
var (
	isAuditAction func(string) bool
	isAuditStatus func(string) bool
)

// iso8601Layouts are the accepted date-time layouts, most specific first.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RegisterRecordValidators registers the iso8601, audit_action, and
// audit_status custom validators, with the vocabulary membership checks
// supplied by the caller.
func RegisterRecordValidators(
	actionFn func(string) bool,
	statusFn func(string) bool,
) {
	isAuditAction = actionFn
	isAuditStatus = statusFn

	// Cannot error: tags are non-empty and functions are non-nil.
	_ = instance.RegisterValidation("iso8601", validISO8601)
	_ = instance.RegisterValidation("audit_action", validAuditAction)
	_ = instance.RegisterValidation("audit_status", validAuditStatus)
}

// validISO8601 checks whether the field parses under any accepted layout.
func validISO8601(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}

	return false
}

// validAuditAction checks membership in the closed action vocabulary.
func validAuditAction(fl validator.FieldLevel) bool {
	if isAuditAction == nil {
		return false
	}

	return isAuditAction(fl.Field().String())
}

// validAuditStatus checks membership in the closed status vocabulary.
func validAuditStatus(fl validator.FieldLevel) bool {
	if isAuditStatus == nil {
		return false
	}

	return isAuditStatus(fl.Field().String())
}
