package apperror

import "errors"

var (
	ErrOutOfRange        = errors.New("coordinate out of range")
	ErrMissingCoordinate = errors.New("missing coordinate")
	ErrMalformedBoard    = errors.New("malformed board")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
)
