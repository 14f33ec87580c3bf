package relay

import (
	// Packages
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Tool names in the default catalog
const (
	AddVikunjaTask = "add_vikunja_task"
	AddAnylistItem = "add_anylist_item"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DefaultDefinitions returns the built-in tool catalog. The same definitions
// drive both the system prompt and extraction validation.
func DefaultDefinitions() []toolcall.Definition {
	return []toolcall.Definition{
		{
			Name:        AddVikunjaTask,
			Description: "Add a task to Vikunja with specified project_id, title, description, labels, due_date, and priority",
			Parameters: map[string]toolcall.Param{
				"project_id": {Type: toolcall.TypeInteger, Required: true, Description: "Project to add the task to"},
				"title":      {Type: toolcall.TypeString, Required: true, Description: "Task title"},
				"description": {
					Type: toolcall.TypeString, Description: "Longer task description",
				},
				"labels":   {Type: toolcall.TypeStringArray, Description: "Label names to attach"},
				"due_date": {Type: toolcall.TypeString, Description: "Due date, natural language or ISO format"},
				"due_time": {Type: toolcall.TypeString, Description: "Time of day the task is due, 24-hour HH:MM"},
				"priority": {Type: toolcall.TypeInteger, Description: "Priority from 1 (low) to 5 (urgent)"},
			},
		},
		{
			Name:        AddAnylistItem,
			Description: "Add an item to an AnyList grocery list with specified list_name, item_name, quantity and unit",
			Parameters: map[string]toolcall.Param{
				"list_name": {Type: toolcall.TypeString, Required: true, Description: "Name of the list"},
				"item_name": {Type: toolcall.TypeString, Required: true, Description: "Name of the item"},
				"quantity":  {Type: toolcall.TypeInteger, Description: "How many to buy"},
				"unit":      {Type: toolcall.TypeString, Description: "Unit for the quantity, e.g. kg"},
			},
		},
	}
}

// DefaultAliases maps camel-cased argument spellings onto the canonical
// snake-cased keys before validation
func DefaultAliases() map[string]string {
	return map[string]string{
		"projectId": "project_id",
		"dueDate":   "due_date",
		"dueTime":   "due_time",
		"listName":  "list_name",
		"itemName":  "item_name",
	}
}
