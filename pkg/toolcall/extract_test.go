package toolcall_test

import (
	"errors"
	"testing"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

func testCatalog(t *testing.T) *toolcall.Catalog {
	t.Helper()
	catalog, err := toolcall.NewCatalog(
		toolcall.Definition{
			Name: "add_vikunja_task",
			Parameters: map[string]toolcall.Param{
				"project_id": {Type: toolcall.TypeInteger, Required: true},
				"title":      {Type: toolcall.TypeString, Required: true},
				"labels":     {Type: toolcall.TypeStringArray},
				"due_date":   {Type: toolcall.TypeString},
				"priority":   {Type: toolcall.TypeInteger},
			},
		},
		toolcall.Definition{
			Name: "set_mode",
			Parameters: map[string]toolcall.Param{
				"mode": {Type: toolcall.TypeEnum, Required: true, Enum: []string{"on", "off"}},
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return catalog
}

func testExtractor(t *testing.T, opts ...toolcall.Opt) *toolcall.Extractor {
	t.Helper()
	extractor, err := toolcall.NewExtractor(testCatalog(t), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return extractor
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Extract_001(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// A well-formed call surrounded by prose
	invocation, err := extractor.Extract(`Sure! <tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": 1, "title": "Buy milk"}} </tool_call> Done.`)
	if assert.NoError(err) {
		assert.Equal("add_vikunja_task", invocation.Name)
		assert.Equal(int64(1), invocation.Arguments["project_id"])
		assert.Equal("Buy milk", invocation.Arguments["title"])
	}
}

func Test_Extract_002(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// No sentinels at all
	_, err := extractor.Extract(`I added the task for you.`)
	assert.ErrorIs(err, taskrelay.ErrNoToolCall)
}

func Test_Extract_003(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Trailing comma is not valid JSON
	_, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"title": "x",}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrMalformedToolCall)

	var extractErr *toolcall.Error
	if assert.ErrorAs(err, &extractErr) {
		assert.NotEmpty(extractErr.Raw)
	}
}

func Test_Extract_004(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Missing or non-string name
	_, err := extractor.Extract(`<tool_call> {"arguments": {"title": "x"}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrMissingToolName)

	_, err = extractor.Extract(`<tool_call> {"name": 42, "arguments": {}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrMissingToolName)
}

func Test_Extract_005(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// A tool not in the catalog is classified, and the name is preserved
	// for reporting
	_, err := extractor.Extract(`<tool_call> {"name": "send_email", "arguments": {}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrUnknownTool)

	var extractErr *toolcall.Error
	if assert.ErrorAs(err, &extractErr) {
		assert.Equal("send_email", extractErr.Tool)
	}
}

func Test_Extract_006(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Missing required argument
	_, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": 1}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrBadArgument)

	var extractErr *toolcall.Error
	if assert.ErrorAs(err, &extractErr) {
		assert.Equal("title", extractErr.Field)
	}
}

func Test_Extract_007(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Integer coercion: numeric strings and integral floats are accepted,
	// fractional values are not
	invocation, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": "7", "title": "x", "priority": 3}} </tool_call>`)
	if assert.NoError(err) {
		assert.Equal(int64(7), invocation.Arguments["project_id"])
		assert.Equal(int64(3), invocation.Arguments["priority"])
	}

	_, err = extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": 1.5, "title": "x"}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrBadArgument)
}

func Test_Extract_008(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Array-of-string and enum validation
	invocation, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": 1, "title": "x", "labels": ["home", "urgent"]}} </tool_call>`)
	if assert.NoError(err) {
		assert.Equal([]string{"home", "urgent"}, invocation.Arguments["labels"])
	}

	_, err = extractor.Extract(`<tool_call> {"name": "set_mode", "arguments": {"mode": "auto"}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrBadArgument)

	invocation, err = extractor.Extract(`<tool_call> {"name": "set_mode", "arguments": {"mode": "on"}} </tool_call>`)
	if assert.NoError(err) {
		assert.Equal("on", invocation.Arguments["mode"])
	}
}

func Test_Extract_009(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t, toolcall.WithAlias("projectId", "project_id"))

	// Alias spellings canonicalize before validation
	invocation, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"projectId": 2, "title": "x"}} </tool_call>`)
	if assert.NoError(err) {
		assert.Equal(int64(2), invocation.Arguments["project_id"])
		assert.NotContains(invocation.Arguments, "projectId")
	}

	// A canonical key already present wins over its alias
	invocation, err = extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"projectId": 2, "project_id": 9, "title": "x"}} </tool_call>`)
	if assert.NoError(err) {
		assert.Equal(int64(9), invocation.Arguments["project_id"])
	}
}

func Test_Extract_010(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t, toolcall.WithSentinels("[[CALL]]", "[[/CALL]]"))

	// Custom sentinels replace the defaults entirely
	invocation, err := extractor.Extract(`[[CALL]] {"name": "add_vikunja_task", "arguments": {"project_id": 1, "title": "x"}} [[/CALL]]`)
	if assert.NoError(err) {
		assert.Equal("add_vikunja_task", invocation.Name)
	}

	_, err = extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": 1, "title": "x"}} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrNoToolCall)
}

func Test_Extract_011(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Undeclared argument keys pass through untouched
	invocation, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": {"project_id": 1, "title": "x", "color": "blue"}} </tool_call>`)
	if assert.NoError(err) {
		assert.Equal("blue", invocation.Arguments["color"])
	}
}

func Test_Extract_012(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Absent arguments object defaults to empty, then required validation
	// kicks in
	_, err := extractor.Extract(`<tool_call> {"name": "add_vikunja_task"} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrBadArgument)

	// Non-object arguments is malformed
	_, err = extractor.Extract(`<tool_call> {"name": "add_vikunja_task", "arguments": [1, 2]} </tool_call>`)
	assert.ErrorIs(err, taskrelay.ErrMalformedToolCall)
}

func Test_Extract_013(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Multiline payload inside the sentinels
	invocation, err := extractor.Extract("<tool_call>\n{\n  \"name\": \"add_vikunja_task\",\n  \"arguments\": {\"project_id\": 1, \"title\": \"Buy milk\"}\n}\n</tool_call>")
	if assert.NoError(err) {
		assert.Equal("Buy milk", invocation.Arguments["title"])
	}
}

func Test_Extract_014(t *testing.T) {
	assert := assert.New(t)
	extractor := testExtractor(t)

	// Classified failures are a single error type unwrapping to the kind
	_, err := extractor.Extract(`no call here`)
	var extractErr *toolcall.Error
	assert.True(errors.As(err, &extractErr))
	assert.Equal(taskrelay.ErrNoToolCall, extractErr.Kind)
}
