package calendar

import (
	"context"
	"errors"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidRange = errors.New("block range start is after end")
	ErrNotFound     = errors.New("calendar block not found")
	ErrUnavailable  = errors.New("storage unavailable")
)

// storageErr maps storage timeouts to the retryable ErrUnavailable;
// everything else passes through untouched.
func storageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	return err
}
