/*
duedate normalizes natural-language or partial date and time strings into an
unambiguous UTC instant. The policy layered on top of the underlying parser:
a bare date means end of that day (23:59 local), ambiguous relative
expressions prefer the future, and anything unparseable degrades to "no due
date" rather than an error.
*/
package duedate

import (
	"regexp"
	"strings"
	"time"

	// Packages
	naturaldate "github.com/tj/go-naturaldate"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Normalizer converts date and time strings into UTC instants. The zero
// value is not usable; construct with New. A Normalizer is immutable and
// safe for concurrent use.
type Normalizer struct {
	loc *time.Location
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Layout is the canonical representation of a normalized instant
const Layout = "2006-01-02T15:04:05Z07:00"

// End-of-day default applied when no clock time is given
const (
	endOfDayHour   = 23
	endOfDayMinute = 59
)

// Explicit layouts tried before handing off to the natural-language parser.
// Layouts carrying a clock component come first.
var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04PM",
	"3:04pm",
	"3PM",
	"3pm",
	"3:04 PM",
	"3:04 pm",
}

// clockPattern detects an explicit clock time inside a natural-language
// date expression, e.g. "tomorrow at 5pm".
var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}|\d{1,2}\s*(am|pm)|\bnoon\b|\bmidnight\b)`)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a normalizer which interprets zone-less input in the given
// civil time zone. A nil location means UTC.
func New(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Normalize converts a date string and an optional time-of-day string into a
// UTC instant anchored at ref, returning false when no usable date can be
// derived. Absence is a valid outcome, not an error: callers omit the field
// downstream rather than sending a sentinel.
func (n *Normalizer) Normalize(date, timeOfDay string, ref time.Time) (string, bool) {
	resolved, ok := n.Resolve(date, timeOfDay, ref)
	if !ok {
		return "", false
	}
	return resolved.UTC().Format(Layout), true
}

// Resolve is Normalize without the final formatting step
func (n *Normalizer) Resolve(date, timeOfDay string, ref time.Time) (time.Time, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false
	}

	resolved, explicitClock, ok := n.resolveDate(date, ref)
	if !ok {
		return time.Time{}, false
	}

	// An explicit time-of-day overrides whatever the date carried. An
	// unparseable time-of-day degrades to the end-of-day default below.
	if timeOfDay = strings.TrimSpace(timeOfDay); timeOfDay != "" {
		if hour, minute, second, ok := parseClock(timeOfDay); ok {
			resolved = time.Date(resolved.Year(), resolved.Month(), resolved.Day(), hour, minute, second, 0, n.loc)
			explicitClock = true
		}
	}

	// End-of-day policy: a bare date means "due by the end of that day",
	// never its first instant.
	if !explicitClock {
		resolved = time.Date(resolved.Year(), resolved.Month(), resolved.Day(), endOfDayHour, endOfDayMinute, 0, 0, n.loc)
	}

	return resolved, true
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolveDate parses the date expression, trying explicit layouts before
// natural language. It reports whether the expression carried its own clock
// time.
func (n *Normalizer) resolveDate(date string, ref time.Time) (resolved time.Time, explicitClock, ok bool) {
	for _, layout := range clockLayouts {
		if t, err := time.ParseInLocation(layout, date, n.loc); err == nil {
			return t.In(n.loc), true, true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, date, n.loc); err == nil {
			return t, false, true
		}
	}

	// Natural language, anchored at ref in the assumed zone. Ambiguous
	// relative expressions resolve at or after ref, never before it.
	t, err := naturaldate.Parse(date, ref.In(n.loc), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, false, false
	}
	return t.In(n.loc), clockPattern.MatchString(date), true
}

// parseClock parses an explicit time-of-day string
func parseClock(s string) (int, int, int, bool) {
	switch strings.ToLower(s) {
	case "noon", "midday":
		return 12, 0, 0, true
	case "midnight":
		return 0, 0, 0, true
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), t.Second(), true
		}
	}
	return 0, 0, 0, false
}
