// Package domain holds the error taxonomy shared by the front-desk aggregates.
package domain

import (
	"errors"
	"fmt"
)

// Error codes surfaced to API clients.
const (
	CodeRoomUnavailable  = "ROOM_UNAVAILABLE"
	CodeBookingNotFound  = "BOOKING_NOT_FOUND"
	CodeAlreadyCancelled = "ALREADY_CANCELLED"
	CodeMalformedInput   = "MALFORMED_INPUT"
	CodeRoomNotFound     = "ROOM_NOT_FOUND"
	CodeNoMatch          = "NO_MATCH"
)

// Sentinel errors for errors.Is matching.
var (
	ErrRoomUnavailable  = errors.New("room unavailable")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrMalformedInput   = errors.New("malformed input")
	ErrRoomNotFound     = errors.New("room not found")
	ErrNoMatch          = errors.New("no match")
)

// Error is a domain failure with a stable code and a human-readable message.
type Error struct {
	Code    string
	Message string
	kind    error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// NewRoomUnavailableError reports a booking attempt against a missing or booked room.
func NewRoomUnavailableError(roomID int, reason string) *Error {
	return &Error{
		Code:    CodeRoomUnavailable,
		Message: fmt.Sprintf("room %d: %s", roomID, reason),
		kind:    ErrRoomUnavailable,
	}
}

// NewBookingNotFoundError reports an unknown booking id.
func NewBookingNotFoundError(bookingID int) *Error {
	return &Error{
		Code:    CodeBookingNotFound,
		Message: fmt.Sprintf("booking %d not found", bookingID),
		kind:    ErrBookingNotFound,
	}
}

// NewAlreadyCancelledError reports a cancellation of a booking that is no longer active.
func NewAlreadyCancelledError(bookingID int) *Error {
	return &Error{
		Code:    CodeAlreadyCancelled,
		Message: fmt.Sprintf("booking %d already cancelled", bookingID),
		kind:    ErrAlreadyCancelled,
	}
}

// NewMalformedInputError reports missing or unparseable input.
func NewMalformedInputError(message string) *Error {
	return &Error{
		Code:    CodeMalformedInput,
		Message: message,
		kind:    ErrMalformedInput,
	}
}

// NewRoomNotFoundError reports a lookup of an unknown room.
func NewRoomNotFoundError(roomID int) *Error {
	return &Error{
		Code:    CodeRoomNotFound,
		Message: fmt.Sprintf("room %d not found", roomID),
		kind:    ErrRoomNotFound,
	}
}

// NewNoMatchError reports a search that matched neither a booking nor a room.
func NewNoMatchError(query int) *Error {
	return &Error{
		Code:    CodeNoMatch,
		Message: fmt.Sprintf("no booking or room matches %d", query),
		kind:    ErrNoMatch,
	}
}

// Code returns the domain error code for err, or "" if err is not a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
