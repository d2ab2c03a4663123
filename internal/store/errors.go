package store

import "errors"

// ErrNotFound reports a stream or vocabulary name with no stored data.
var ErrNotFound = errors.New("not found")
