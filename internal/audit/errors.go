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

import (
	"errors"
	"fmt"
	"strings"
)

// Filter errors returned by the combined list operation before any backend
// call is made.
var (
	// ErrMissingFilter indicates neither tenantId nor actor was supplied.
	ErrMissingFilter = errors.New("either tenantId or actor is required")
	// ErrAmbiguousFilter indicates both tenantId and actor were supplied.
	ErrAmbiguousFilter = errors.New("tenantId and actor are mutually exclusive")
)

// ValidationError reports every field of a submission that failed schema
// validation, so the caller can correct all problems in one round trip.
type ValidationError struct {
	// Fields holds one human-readable message per violated field.
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, "; "))
}

// NotFoundError indicates a point lookup matched no record. It is a normal
// outcome, distinct from a failed lookup.
type NotFoundError struct {
	// ID is the identifier that matched nothing.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("audit log not found with id: %s", e.ID)
}

// CreationError wraps a backend failure during record creation.
type CreationError struct {
	cause error
}

// NewCreationError wraps err as a CreationError.
func NewCreationError(
	err error,
) *CreationError {
	return &CreationError{cause: err}
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create audit log: %s", e.cause)
}

// Unwrap returns the underlying cause.
func (e *CreationError) Unwrap() error {
	return e.cause
}

// RetrievalError wraps a backend failure during lookup or listing.
type RetrievalError struct {
	cause error
}

// NewRetrievalError wraps err as a RetrievalError.
func NewRetrievalError(
	err error,
) *RetrievalError {
	return &RetrievalError{cause: err}
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve audit logs: %s", e.cause)
}

// Unwrap returns the underlying cause.
func (e *RetrievalError) Unwrap() error {
	return e.cause
}
