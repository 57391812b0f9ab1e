package service

import "errors"

var (
	// ErrEmptyCart is returned when checkout is attempted with no lines.
	ErrEmptyCart = errors.New("cannot checkout an empty cart")

	// ErrValidation wraps all input validation failures so callers can
	// distinguish bad input from storage errors with errors.Is.
	ErrValidation = errors.New("invalid input")
)
