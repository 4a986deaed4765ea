// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal error.
var ErrInternal = errors.New("internal")

// ErrTransient indicates a recoverable fetch failure (network or 5xx).
// Callers may retry; the library never retries on its own.
var ErrTransient = errors.New("transient fetch failure")
