package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryStyle  Category = "style"
	CategoryExport Category = "export"
	CategoryServer Category = "server"
	CategoryCLI    Category = "cli"
)

// Location represents a source location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// TipsError is a structured error with code, location and suggestion.
type TipsError struct {
	// Code is a unique error identifier (e.g., "E110").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the source location where the error occurred.
	Location *Location

	// Context contains the source lines surrounding Location, centred on it.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TipsError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TipsError) Unwrap() error {
	return e.Wrapped
}

// Is matches another TipsError with the same code.
func (e *TipsError) Is(target error) bool {
	t, ok := target.(*TipsError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithLocation adds source location to the error.
func (e *TipsError) WithLocation(file string, line, column int) *TipsError {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithContext adds source lines around the location.
func (e *TipsError) WithContext(lines []string) *TipsError {
	e.Context = lines
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TipsError) WithSuggestion(s string) *TipsError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *TipsError) WithDetail(d string) *TipsError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail.
func (e *TipsError) WithDetailf(format string, args ...any) *TipsError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *TipsError) Wrap(err error) *TipsError {
	e.Wrapped = err
	return e
}

// New creates a TipsError from a registered error code.
func New(code string) *TipsError {
	template, ok := registry[code]
	if !ok {
		return &TipsError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TipsError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// FromError wraps a standard error in a TipsError.
// Errors that already are (or wrap) a TipsError are returned as is.
func FromError(err error, code string) *TipsError {
	if err == nil {
		return nil
	}
	var te *TipsError
	if stderrors.As(err, &te) {
		return te
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first TipsError in err's chain, or "".
func Code(err error) string {
	var te *TipsError
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}
