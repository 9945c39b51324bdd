package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrPaymentDeclined marks failures where the payment service refused
	// the card, as opposed to infrastructure faults.
	ErrPaymentDeclined = errors.New("payment declined")
)

// PaymentDeclinedError wraps err as a decline. The original error stays
// reachable through errors.As for callers that need provider detail.
func PaymentDeclinedError(err error) error {
	return fmt.Errorf("%w: %w", ErrPaymentDeclined, err)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
