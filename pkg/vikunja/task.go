package vikunja

import (
	"context"
	"encoding/json"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-client"
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Task is a create-task request. Optional fields are omitted from the
// payload when absent rather than sent as sentinels.
type Task struct {
	ProjectID   int64    `json:"-"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Priority    int64    `json:"priority,omitempty"`
}

// TaskResponse is the created task
type TaskResponse struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date,omitempty"`
	Priority  int64  `json:"priority,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t TaskResponse) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateTask creates a task in the given project
func (vikunja *Client) CreateTask(ctx context.Context, task Task) (*TaskResponse, error) {
	if task.ProjectID == 0 {
		return nil, taskrelay.ErrBadParameter.With("missing project_id")
	}
	if task.Title == "" {
		return nil, taskrelay.ErrBadParameter.With("missing title")
	}

	// Request
	req, err := client.NewJSONRequest(task)
	if err != nil {
		return nil, err
	}

	// Response
	var response TaskResponse
	if err := vikunja.DoWithContext(ctx, req, &response, client.OptPath("projects", strconv.FormatInt(task.ProjectID, 10), "tasks")); err != nil {
		return nil, err
	}

	// Return the created task
	return &response, nil
}
