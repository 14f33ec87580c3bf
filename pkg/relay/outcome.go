package relay

import (
	"encoding/json"

	// Packages
	anylist "github.com/mutablelogic/go-taskrelay/pkg/anylist"
	vikunja "github.com/mutablelogic/go-taskrelay/pkg/vikunja"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Outcome is the user-visible result of one capture. A capture the model
// fouled up (no tool call, unknown tool, bad arguments) is still an Outcome
// with OK false, so the caller can return a coherent response.
type Outcome struct {
	ID         string                `json:"id"`
	OK         bool                  `json:"ok"`
	Transcript string                `json:"transcript,omitempty"`
	Tool       string                `json:"tool,omitempty"`
	Message    string                `json:"message"`
	Task       *vikunja.TaskResponse `json:"task,omitempty"`
	Item       *anylist.ItemResponse `json:"item,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (o *Outcome) String() string {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
