package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kinds. Every error returned by the core unwraps to exactly one of these.
var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrIntegration = errors.New("integration error")
	ErrPersistence = errors.New("persistence error")
)

var (
	ErrBookingNotFound  = fmt.Errorf("%w: booking not found", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("%w: property not found", ErrNotFound)
	ErrPricingNotFound  = fmt.Errorf("%w: pricing not found for this date and shift", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("%w: session not found", ErrNotFound)
)

var (
	ErrSlotTaken        = fmt.Errorf("%w: this slot is already booked", ErrConflict)
	ErrStaleStatus      = fmt.Errorf("%w: booking status changed concurrently", ErrConflict)
	ErrBookingNotActive = fmt.Errorf("%w: booking is no longer active", ErrConflict)
	ErrDuplicateMessage = fmt.Errorf("%w: notification already recorded", ErrConflict)
	ErrBookingCodeTaken = fmt.Errorf("%w: booking code already in use", ErrConflict)
)

var (
	ErrNotPaymentScreenshot = fmt.Errorf("%w: image is not a payment screenshot", ErrValidation)
	ErrLowConfidence        = fmt.Errorf("%w: screenshot could not be read reliably", ErrValidation)
	ErrAmountUnreadable     = fmt.Errorf("%w: payment amount is not readable on the screenshot", ErrValidation)
	ErrNoChannel            = errors.New("no reachable channel for recipient")
)

// StatusError carries the status the store actually found when a
// compare-and-swap was rejected.
type StatusError struct {
	BookingID string
	Current   BookingStatus
	Err       error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (booking %s is %s)", e.Err.Error(), e.BookingID, e.Current)
}

func (e *StatusError) Unwrap() error { return e.Err }

// AmountMismatchError reports a payment claim that does not cover the booking total.
type AmountMismatchError struct {
	Expected decimal.Decimal
	Provided decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: expected %s, provided %s",
		e.Expected.String(), e.Provided.String())
}

func (e *AmountMismatchError) Unwrap() error { return ErrValidation }

// Kind returns the taxonomy bucket of err, "" for unknown errors.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIntegration):
		return "integration"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	default:
		return ""
	}
}
