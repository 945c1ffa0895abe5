package ir

import (
	"errors"
)

var (
	ErrPath     = errors.New("bad path")
	ErrNotFound = errors.New("not found")
	ErrType     = errors.New("type mismatch")
)
