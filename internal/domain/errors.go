package domain

import "errors"

// ErrInvalidInput marks a caller contract violation: missing identifying
// fields, non-finite coordinates, or an unrecognized disaster type. Callers
// surface it as a rejected request rather than silently defaulting.
var ErrInvalidInput = errors.New("invalid input")
