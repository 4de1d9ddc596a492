package common

import "errors"

// ErrInvalidInput marks caller mistakes: non-positive prices or amounts, empty
// or too-short historical series. These are never retried internally.
var ErrInvalidInput = errors.New("invalid input")
