package domain

import "errors"

// ErrNotFound is returned by stores when a requested key or record does not exist.
var ErrNotFound = errors.New("not found")
