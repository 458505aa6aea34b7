package strategy

import "errors"

// ErrNilRandomSource indicates that Plan was called without a random source.
var ErrNilRandomSource = errors.New("random source is required")
