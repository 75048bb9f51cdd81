package core

import "errors"

var (
	// ErrOutOfRange indicates a grid access outside the current dimensions.
	ErrOutOfRange = errors.New("core: cell index out of range")

	// ErrInvalidValue indicates a cell value other than Dead or Alive.
	ErrInvalidValue = errors.New("core: invalid cell value")
)
