package domain

import "errors"

// ErrValidation marks a request that is missing or malforming a required
// field. The HTTP layer maps it to 400.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is reserved for future lookups by identifier; no current route
// exercises it (reads return empty collections instead of erroring).
var ErrNotFound = errors.New("record not found")
