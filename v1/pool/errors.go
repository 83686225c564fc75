// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pool

import "errors"

// Error codes returned by pool operations.
const (
	// CapacityErr indicates a miss would exceed the cap set by
	// WithMaxRecords. Interning is all-or-nothing: there is no partial or
	// retry state behind this error.
	CapacityErr = "pool_capacity_error"

	// InvalidEncodingErr indicates non-UTF-8 input to a text constructor.
	InvalidEncodingErr = "pool_invalid_encoding_error"
)

// Error is the error type returned by pool operations.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// ErrCode returns the pool error code carried by err, or the empty string
// if err is not a pool error.
func ErrCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
