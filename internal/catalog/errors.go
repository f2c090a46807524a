package catalog

import "errors"

// Domain errors for catalog loading and lookup.
var (
	ErrInvalidKind     = errors.New("invalid question kind")
	ErrEmptyCatalog    = errors.New("catalog has no questions")
	ErrDuplicateID     = errors.New("duplicate question id")
	ErrMissingOptions  = errors.New("choice question has no options")
	ErrIndexOutOfRange = errors.New("question index out of range")
)
