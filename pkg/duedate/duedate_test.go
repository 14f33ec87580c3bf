package duedate_test

import (
	"testing"
	"time"

	// Packages
	duedate "github.com/mutablelogic/go-taskrelay/pkg/duedate"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// Wednesday, 30 April 2025, midday UTC
var ref = time.Date(2025, time.April, 30, 12, 0, 0, 0, time.UTC)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Normalize_001(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// A bare date means the end of that day
	due, ok := n.Normalize("2025-05-01", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T23:59:00Z", due)
}

func Test_Normalize_002(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// An explicit time-of-day overrides the end-of-day default
	due, ok := n.Normalize("2025-05-01", "14:30", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T14:30:00Z", due)
}

func Test_Normalize_003(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// An instant which already carries a clock is preserved
	due, ok := n.Normalize("2025-05-01T09:15:00Z", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T09:15:00Z", due)

	// And normalizing the output again is a fixed point
	again, ok := n.Normalize(due, "", ref)
	assert.True(ok)
	assert.Equal(due, again)
}

func Test_Normalize_004(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// Absence and unparseable input both degrade to "no due date"
	_, ok := n.Normalize("", "", ref)
	assert.False(ok)

	_, ok = n.Normalize("   ", "", ref)
	assert.False(ok)

	_, ok = n.Normalize("qwertyuiop", "", ref)
	assert.False(ok)
}

func Test_Normalize_005(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// A bare weekday resolves forward from the reference, never backward.
	// The reference is a Wednesday, so friday is in two days and monday
	// wraps to the following week.
	due, ok := n.Normalize("friday", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-02T23:59:00Z", due)

	due, ok = n.Normalize("monday", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-05T23:59:00Z", due)
}

func Test_Normalize_006(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// Relative expressions
	due, ok := n.Normalize("tomorrow", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T23:59:00Z", due)

	due, ok = n.Normalize("tomorrow at 5pm", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T17:00:00Z", due)
}

func Test_Normalize_007(t *testing.T) {
	assert := assert.New(t)

	// Civil dates are interpreted in the configured zone before conversion
	// to UTC
	n := duedate.New(time.FixedZone("UTC+2", 2*60*60))
	due, ok := n.Normalize("2025-05-01", "", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T21:59:00Z", due)

	due, ok = n.Normalize("2025-05-01", "noon", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T10:00:00Z", due)
}

func Test_Normalize_008(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// Time-of-day spellings
	for timeOfDay, want := range map[string]string{
		"09:15":    "2025-05-01T09:15:00Z",
		"9:15am":   "2025-05-01T09:15:00Z",
		"5pm":      "2025-05-01T17:00:00Z",
		"noon":     "2025-05-01T12:00:00Z",
		"midnight": "2025-05-01T00:00:00Z",
	} {
		due, ok := n.Normalize("2025-05-01", timeOfDay, ref)
		assert.True(ok, timeOfDay)
		assert.Equal(want, due, timeOfDay)
	}

	// An unparseable time-of-day degrades to the end-of-day default
	due, ok := n.Normalize("2025-05-01", "whenever", ref)
	assert.True(ok)
	assert.Equal("2025-05-01T23:59:00Z", due)
}

func Test_Normalize_009(t *testing.T) {
	assert := assert.New(t)
	n := duedate.New(nil)

	// Other explicit date spellings
	for date, want := range map[string]string{
		"2025/05/01":       "2025-05-01T23:59:00Z",
		"01 May 2025":      "2025-05-01T23:59:00Z",
		"May 1, 2025":      "2025-05-01T23:59:00Z",
		"2025-05-01 09:15": "2025-05-01T09:15:00Z",
	} {
		due, ok := n.Normalize(date, "", ref)
		assert.True(ok, date)
		assert.Equal(want, due, date)
	}
}
