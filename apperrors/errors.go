package apperrors

import (
	"fmt"
	"net/http"
)

// Code identifies an application error kind on the wire.
type Code int

const (
	CodeStockNotFound       Code = 1001
	CodeUnprocessableEntity Code = 1002
	CodeInsufficientData    Code = 1003
	CodeInternal            Code = 2001
	CodeJobAlreadyRunning   Code = 3001
)

// Error is the closed set of failures surfaced by caller-facing operations.
// Background tick failures are never wrapped in an Error; they are logged
// inside the scheduler and contained there.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error // wrapped cause; logged, never serialized to clients

	// Set only for CodeInsufficientData.
	Found    int
	Required int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFound reports that no stock exists for the given symbol.
func NewNotFound(symbol string) *Error {
	return &Error{
		Code:    CodeStockNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("Stock not found for symbol: %s.", symbol),
	}
}

// NewUnprocessableEntity reports a request validation failure.
func NewUnprocessableEntity(message string) *Error {
	return &Error{
		Code:    CodeUnprocessableEntity,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewInsufficientData reports that fewer prices are stored for the symbol
// than the moving average window requires.
func NewInsufficientData(symbol string, found, required int) *Error {
	return &Error{
		Code:     CodeInsufficientData,
		Status:   http.StatusBadRequest,
		Message:  fmt.Sprintf("Not enough price data for %s. At least %d prices are required.", symbol, required),
		Found:    found,
		Required: required,
	}
}

// NewJobAlreadyRunning reports that a price check job for the symbol is
// already registered.
func NewJobAlreadyRunning(symbol string) *Error {
	return &Error{
		Code:    CodeJobAlreadyRunning,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("Price check for %s is already running.", symbol),
	}
}

// NewInternal wraps an unexpected failure behind a generic client message.
func NewInternal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong",
		Err:     err,
	}
}
