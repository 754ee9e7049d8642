// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion piece other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameFinished indicates an operation attempted after the game ended.
	ErrGameFinished = errors.New("game is finished")

	// ErrInvalidSquare indicates a square name outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMoveText indicates move text that is neither SAN nor
	// coordinate notation.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrAmbiguousMove indicates move text that fits more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidColour indicates a colour name other than white or black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move request with its context. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err       error  // The underlying error
	From      string // Requested origin square
	To        string // Requested destination square
	PromoteTo string // Requested promotion piece (if any)
	Ply       int    // Ply number the move would have had (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	move := e.From + e.To
	if e.PromoteTo != "" {
		move += "=" + e.PromoteTo
	}
	if move != "" {
		parts = append(parts, fmt.Sprintf("move %q", move))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError reports which field of a FEN string could not be parsed.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name, e.g. "placement" or "castling"
	Got   string // What was found instead
}

// Error returns a formatted error message with the field and offending text.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It re-exports the standard library function so callers need only one
// errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
