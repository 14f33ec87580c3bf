/*
taskrelay turns spoken or typed instructions into grocery-list items and
project tasks. A transcript is sent to a chat model primed to emit exactly one
tool call from a fixed catalog; the call is extracted, validated and dispatched
to the matching downstream service, with any natural-language due date
normalized to a UTC instant along the way.
*/
package taskrelay

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Chatter is the interface that wraps a single chat turn with a language
// model. The reply may contain arbitrary prose around a sentinel-wrapped
// tool call; it is not assumed to be schema-constrained.
type Chatter interface {
	// Chat sends a system instruction and a user message, returning the
	// assistant's full reply text
	Chat(ctx context.Context, system, user string) (string, error)
}

// Transcriber is the interface that wraps a speech-to-text service
type Transcriber interface {
	// Transcribe converts audio bytes into a transcript
	Transcribe(ctx context.Context, filename, mimetype string, data []byte) (string, error)
}
