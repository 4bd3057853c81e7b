package domain

import "errors"

var (
	ErrInvalidID  = errors.New("invalid identifier")
	ErrValidation = errors.New("validation failed")
)
