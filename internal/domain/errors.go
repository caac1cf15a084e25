package domain

import "errors"

var (
	// ErrSubscriptionFailed is returned when subscription to events fails
	ErrSubscriptionFailed = errors.New("subscription failed")

	// ErrUnknownEvent is returned when a log carries an event signature the indexer does not handle
	ErrUnknownEvent = errors.New("unknown event")

	// ErrInvalidEventShape is returned when a log does not match the expected event layout
	ErrInvalidEventShape = errors.New("invalid event shape")

	// ErrUnexpectedContract is returned when a known event is emitted by a contract that does not own it
	ErrUnexpectedContract = errors.New("unexpected contract")

	// ErrInvalidAmount is returned when an event amount is not a valid unsigned 256-bit integer
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUserNotFound is returned when an aggregate references a user that has not been created yet
	ErrUserNotFound = errors.New("user not found")

	// ErrAmountOverflow is returned when an accumulator would exceed 2^256-1
	ErrAmountOverflow = errors.New("amount overflow")
)
