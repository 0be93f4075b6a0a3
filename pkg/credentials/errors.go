package credentials

import "errors"

var (
	ErrNotFound   = errors.New("source file not found")
	ErrFormat     = errors.New("invalid credential file format")
	ErrValidation = errors.New("required credential fields missing")
)
