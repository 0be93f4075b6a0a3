package storage

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrAccess             = errors.New("access rejected by storage service")
	ErrConnFailed         = errors.New("connection failed")
	ErrNotFound           = errors.New("object not found")
	ErrTimeout            = errors.New("operation timeout")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// IsRetryable returns true if error should trigger a retry
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConnFailed) || errors.Is(err, ErrTimeout)
}

// IsCritical returns true if error should stop all operations
func IsCritical(err error) bool {
	return errors.Is(err, ErrAccess) ||
		errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrInvalidConfig)
}

// WrapError adds operation context to an error
func WrapError(operation, target string, err error) error {
	return fmt.Errorf("%s %s: %w", operation, target, err)
}
