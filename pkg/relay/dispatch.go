package relay

import (
	"context"
	"fmt"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
	anylist "github.com/mutablelogic/go-taskrelay/pkg/anylist"
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
	vikunja "github.com/mutablelogic/go-taskrelay/pkg/vikunja"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Argument shapes per tool, decoded once at the dispatch boundary

type taskArgs struct {
	ProjectID   int64    `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	DueTime     string   `json:"due_time,omitempty"`
	Priority    int64    `json:"priority,omitempty"`
}

type itemArgs struct {
	ListName string `json:"list_name"`
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// dispatch routes a validated invocation to the matching downstream service
// and fills in the outcome. Tools in the catalog without a dispatch target
// are reported as unsupported, since the catalog is configurable.
func (r *Relay) dispatch(ctx context.Context, invocation *toolcall.Invocation, outcome *Outcome) error {
	outcome.Tool = invocation.Name
	switch invocation.Name {
	case AddVikunjaTask:
		return r.dispatchTask(ctx, invocation, outcome)
	case AddAnylistItem:
		return r.dispatchItem(ctx, invocation, outcome)
	}
	outcome.OK = false
	outcome.Message = "unsupported action: " + invocation.Name
	return nil
}

func (r *Relay) dispatchTask(ctx context.Context, invocation *toolcall.Invocation, outcome *Outcome) error {
	if r.tasks == nil {
		return taskrelay.ErrNotImplemented.With("no task service configured")
	}

	var args taskArgs
	if err := invocation.Decode(&args); err != nil {
		return taskrelay.ErrInternalServerError.With(err)
	}

	task := vikunja.Task{
		ProjectID:   args.ProjectID,
		Title:       args.Title,
		Description: args.Description,
		Labels:      args.Labels,
		Priority:    args.Priority,
	}

	// A due date the normalizer cannot derive is omitted, not an error
	if due, ok := r.normalizer.Normalize(args.DueDate, args.DueTime, r.now()); ok {
		task.DueDate = due
	}

	created, err := r.tasks.CreateTask(ctx, task)
	if err != nil {
		return taskrelay.ErrUpstream.With(err)
	}

	outcome.OK = true
	outcome.Task = created
	if task.DueDate != "" {
		outcome.Message = fmt.Sprintf("Added task %q due %s", args.Title, task.DueDate)
	} else {
		outcome.Message = fmt.Sprintf("Added task %q", args.Title)
	}
	return nil
}

func (r *Relay) dispatchItem(ctx context.Context, invocation *toolcall.Invocation, outcome *Outcome) error {
	if r.groceries == nil {
		return taskrelay.ErrNotImplemented.With("no grocery service configured")
	}

	var args itemArgs
	if err := invocation.Decode(&args); err != nil {
		return taskrelay.ErrInternalServerError.With(err)
	}

	added, err := r.groceries.AddItem(ctx, anylist.Item{
		ListName: args.ListName,
		Name:     args.ItemName,
		Quantity: args.Quantity,
		Unit:     args.Unit,
	})
	if err != nil {
		return taskrelay.ErrUpstream.With(err)
	}

	outcome.OK = true
	outcome.Item = added
	outcome.Message = fmt.Sprintf("Added %q to the %s list", args.ItemName, args.ListName)
	return nil
}
