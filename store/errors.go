package store

import "errors"

// Failure kinds the handlers branch on. Anything else coming out of the
// store is an infrastructure error and is rendered as a 500.
var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already exists")
	ErrOutOfStock = errors.New("out of stock")
)
