package interfaces

import "errors"

var (
	// ErrVersionConflict is returned by Update when the stored version no longer
	// matches the entity's version (another writer got there first).
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicate is returned by Create when a unique key already exists.
	ErrDuplicate = errors.New("duplicate key")
)
