package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoPayload       = errors.New("payment slip is not complete")
	ErrBatchEmpty      = errors.New("batch has no payment rows")
)
