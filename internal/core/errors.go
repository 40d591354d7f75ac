package core

import "errors"

// ErrInvalidInput marks caller-side validation failures: malformed
// buffers, out-of-range strength, unknown modes. The pipeline rejects
// these before any pass executes, so no partial mutation occurs.
var ErrInvalidInput = errors.New("invalid input")
