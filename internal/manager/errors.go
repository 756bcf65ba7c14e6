package manager

import "errors"

var (
	// ErrNoPrimaryKey is returned when an item passed to UpdateItem or
	// DeleteItem does not carry the configured primary-key field.
	ErrNoPrimaryKey = errors.New("item has no primary key")
	// ErrInvalidConfig is returned by NewManager when the handler name or
	// primary-key field is missing.
	ErrInvalidConfig = errors.New("invalid manager configuration")
)
