package errors

import "fmt"

// ParseError represents a generic error produced while building CLI output or
// handling arguments. It is intended for user-facing messages.
type ParseError struct{ Msg string }

func (e ParseError) Error() string { return e.Msg }

// MissingArgError indicates a required option was not provided.
type MissingArgError struct{ Field string }

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Field)
}

// InvalidValueError indicates an option value could not be converted to the
// requested type.
type InvalidValueError struct{ Field, Value, Type string }

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q is not a valid %s", e.Field, e.Value, e.Type)
}

// Helper constructors
func NewParseError(msg string) error   { return ParseError{Msg: msg} }
func NewMissingArg(field string) error { return MissingArgError{Field: field} }
func NewInvalidValue(field, value, typ string) error {
	return InvalidValueError{Field: field, Value: value, Type: typ}
}
