package booking

import (
	"context"
	"errors"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrSlotUnavailable   = errors.New("slot is blocked or already booked")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidState      = errors.New("booking is in a terminal state")
	ErrUnavailable       = errors.New("storage unavailable")
)

// storageErr maps storage timeouts to the retryable ErrUnavailable;
// business errors and everything else pass through.
func storageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	return err
}
