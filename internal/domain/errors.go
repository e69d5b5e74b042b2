package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation          = errors.New("validation failed")
	ErrInsufficientBalance = errors.New("insufficient point balance")
	ErrBelowMinimumUse     = errors.New("amount below minimum use")
	ErrConcurrencyConflict = errors.New("concurrent account modification")
)

// BelowMinimumUseError wraps ErrBelowMinimumUse with the policy minimum so the
// caller can surface it without re-reading the policy.
type BelowMinimumUseError struct {
	Amount  int64
	Minimum int64
}

func (e *BelowMinimumUseError) Error() string {
	return fmt.Sprintf("cannot use %d points: minimum use amount is %d", e.Amount, e.Minimum)
}

func (e *BelowMinimumUseError) Unwrap() error {
	return ErrBelowMinimumUse
}

// InsufficientBalanceError carries the requested and available amounts.
type InsufficientBalanceError struct {
	Requested int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("cannot spend %d points: only %d available", e.Requested, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
