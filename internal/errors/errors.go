package errors

import (
	"errors"
	"fmt"
)

// ErrGroupNotFound is returned when a named light group is not configured
var ErrGroupNotFound = errors.New("group not found")

// ErrBridge is returned when the bridge answers with a non-200 status
var ErrBridge = errors.New("bridge error")

// ErrPairing is returned when the pairing handshake is rejected or malformed
var ErrPairing = errors.New("pairing failed")

// ErrInvalidInput is returned when the provided input is invalid
var ErrInvalidInput = errors.New("invalid input")

// WrapErrorf wraps an error with additional context using fmt.Errorf
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// IsGroupNotFound returns true if the error is or wraps ErrGroupNotFound
func IsGroupNotFound(err error) bool {
	return errors.Is(err, ErrGroupNotFound)
}

// IsBridge returns true if the error is or wraps ErrBridge
func IsBridge(err error) bool {
	return errors.Is(err, ErrBridge)
}

// IsPairing returns true if the error is or wraps ErrPairing
func IsPairing(err error) bool {
	return errors.Is(err, ErrPairing)
}

// IsInvalidInput returns true if the error is or wraps ErrInvalidInput
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// GroupNotFoundf returns a formatted ErrGroupNotFound error
func GroupNotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrGroupNotFound)...)
}

// Bridgef returns a formatted ErrBridge error
func Bridgef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrBridge)...)
}

// Pairingf returns a formatted ErrPairing error
func Pairingf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrPairing)...)
}

// InvalidInputf returns a formatted ErrInvalidInput error
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}
