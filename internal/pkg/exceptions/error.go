package exceptions

import (
	"errors"
	"fmt"
	"medvault-client/internal/pkg/constvars"
	"runtime"
)

// ErrorClass groups errors by how the emergency workflow recovers from them.
type ErrorClass string

const (
	// ClassValidation is user-correctable in place and never reaches the network.
	ClassValidation ErrorClass = "VALIDATION_ERROR"
	// ClassPrecondition blocks submission before any I/O (no session, wrong role).
	ClassPrecondition ErrorClass = "PRECONDITION_ERROR"
	// ClassTransport is a network failure or a non-2xx response.
	ClassTransport ErrorClass = "TRANSPORT_ERROR"
	ClassInternal  ErrorClass = "INTERNAL_ERROR"
)

type CustomError struct {
	Class         ErrorClass `json:"class"`
	StatusCode    int        `json:"status_code"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Location      Location   `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err (which may be nil) and records the location of
// the exceptions constructor's caller.
func BuildNewCustomError(err error, class ErrorClass, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Class:         class,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		cause:         err,
	}
}

// ClassOf reports the class of the first CustomError in err's chain.
func ClassOf(err error) (ErrorClass, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Class, true
	}
	return "", false
}

func IsClass(err error, class ErrorClass) bool {
	c, ok := ClassOf(err)
	return ok && c == class
}

// ClientMessageOf returns the user-facing message carried by err, or fallback.
func ClientMessageOf(err error, fallback string) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return fallback
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
