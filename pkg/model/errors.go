package model

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDivisionUndefined = errors.New("division undefined") // Every candidate referenced by a combination is empty
	ErrIndexOutOfRange   = errors.New("index out of range") // A combination references a candidate that does not exist
)
