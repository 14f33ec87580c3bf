package toolcall

import (
	"fmt"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Error is a classified extraction failure. It unwraps to one of the
// taskrelay error kinds so callers can match with errors.Is, and carries
// the offending tool, field and captured text where relevant.
type Error struct {
	Kind   taskrelay.Err
	Tool   string // tool name, for unknown-tool and argument failures
	Field  string // parameter name, for argument failures
	Reason string // human-readable detail
	Raw    string // captured payload text, for diagnostics only
}

var _ error = (*Error)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *Error) Error() string {
	switch e.Kind {
	case taskrelay.ErrUnknownTool:
		return fmt.Sprintf("unsupported action: %q", e.Tool)
	case taskrelay.ErrBadArgument:
		return fmt.Sprintf("%s: invalid argument %q: %s", e.Tool, e.Field, e.Reason)
	}
	if e.Reason != "" {
		return e.Kind.Error() + ": " + e.Reason
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}
