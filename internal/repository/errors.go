package repository

import "errors"

// ErrNotFound is returned by lookups that match no row, so services can
// tell "no such record" apart from a store failure.
var ErrNotFound = errors.New("record not found")
