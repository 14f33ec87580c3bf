package taskrelay

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrNoToolCall
	ErrMalformedToolCall
	ErrMissingToolName
	ErrUnknownTool
	ErrBadArgument
	ErrUpstream
	ErrInternalServerError
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrNoToolCall:
		return "reply contains no tool call"
	case ErrMalformedToolCall:
		return "tool call is not valid JSON"
	case ErrMissingToolName:
		return "tool call has no name"
	case ErrUnknownTool:
		return "unknown tool"
	case ErrBadArgument:
		return "invalid tool argument"
	case ErrUpstream:
		return "upstream service failed"
	case ErrInternalServerError:
		return "internal server error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
