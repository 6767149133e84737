package repositories

import "errors"

// ErrNotFound is returned by writes that matched no row. Reads use the
// (nil, nil) convention instead so callers decide what a miss means.
var ErrNotFound = errors.New("record not found")
