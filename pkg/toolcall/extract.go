package toolcall

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Extractor parses a model reply into a validated Invocation. It is
// stateless per call and safe for concurrent use.
type Extractor struct {
	catalog  *Catalog
	aliases  map[string]string
	sentinel *regexp.Regexp
}

// Opt is a configuration option for an Extractor
type Opt func(*Extractor) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultOpenSentinel  = "<tool_call>"
	DefaultCloseSentinel = "</tool_call>"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewExtractor creates an extractor for the given catalog
func NewExtractor(catalog *Catalog, opts ...Opt) (*Extractor, error) {
	if catalog == nil {
		return nil, taskrelay.ErrBadParameter.With("missing catalog")
	}

	extractor := &Extractor{
		catalog: catalog,
		aliases: make(map[string]string),
	}
	if err := WithSentinels(DefaultOpenSentinel, DefaultCloseSentinel)(extractor); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(extractor); err != nil {
			return nil, err
		}
	}

	return extractor, nil
}

// WithSentinels sets the marker pair wrapping the tool call payload
func WithSentinels(open, close string) Opt {
	return func(e *Extractor) error {
		if open == "" || close == "" {
			return taskrelay.ErrBadParameter.With("empty sentinel")
		}
		// Non-greedy so a single object is captured even when the reply
		// contains extra prose after the closing marker.
		sentinel, err := regexp.Compile(`(?s)` + regexp.QuoteMeta(open) + `\s*(.*?)\s*` + regexp.QuoteMeta(close))
		if err != nil {
			return err
		}
		e.sentinel = sentinel
		return nil
	}
}

// WithAlias maps an alternate argument key spelling to its canonical name.
// Aliases are resolved before validation.
func WithAlias(alias, canonical string) Opt {
	return func(e *Extractor) error {
		if alias == "" || canonical == "" || alias == canonical {
			return taskrelay.ErrBadParameter.Withf("invalid alias %q => %q", alias, canonical)
		}
		e.aliases[alias] = canonical
		return nil
	}
}

// WithAliases adds a table of alias to canonical key mappings
func WithAliases(aliases map[string]string) Opt {
	return func(e *Extractor) error {
		for alias, canonical := range aliases {
			if err := WithAlias(alias, canonical)(e); err != nil {
				return err
			}
		}
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Extract locates the sentinel-wrapped payload in the reply, parses it and
// validates it against the catalog. On failure it returns a *Error which
// unwraps to one of the taskrelay error kinds.
func (e *Extractor) Extract(reply string) (*Invocation, error) {
	match := e.sentinel.FindStringSubmatch(reply)
	if match == nil {
		return nil, &Error{Kind: taskrelay.ErrNoToolCall}
	}
	raw := match[1]

	// Parse the captured payload
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &Error{Kind: taskrelay.ErrMalformedToolCall, Reason: err.Error(), Raw: raw}
	}

	// Structural checks: name is a string, arguments default to empty
	name, ok := payload["name"].(string)
	if !ok || name == "" {
		return nil, &Error{Kind: taskrelay.ErrMissingToolName, Raw: raw}
	}
	var args map[string]any
	switch v := payload["arguments"].(type) {
	case nil:
		args = make(map[string]any)
	case map[string]any:
		args = v
	default:
		return nil, &Error{Kind: taskrelay.ErrMalformedToolCall, Reason: "arguments is not an object", Raw: raw}
	}

	// Unknown tools are reportable, not fatal
	def, exists := e.catalog.Lookup(name)
	if !exists {
		return nil, &Error{Kind: taskrelay.ErrUnknownTool, Tool: name, Raw: raw}
	}

	// Canonicalize alias key spellings before validation. A canonical key
	// already present wins over its alias.
	for alias, canonical := range e.aliases {
		if value, present := args[alias]; present {
			if _, shadowed := args[canonical]; !shadowed {
				args[canonical] = value
			}
			delete(args, alias)
		}
	}

	// Validate declared parameters; extra keys are preserved untouched
	for _, pname := range paramOrder(def) {
		param := def.Parameters[pname]
		value, present := args[pname]
		if !present {
			if param.Required {
				return nil, &Error{Kind: taskrelay.ErrBadArgument, Tool: name, Field: pname, Reason: "required"}
			}
			continue
		}
		coerced, reason := coerce(param, value)
		if reason != "" {
			return nil, &Error{Kind: taskrelay.ErrBadArgument, Tool: name, Field: pname, Reason: reason}
		}
		args[pname] = coerced
	}

	return &Invocation{Name: name, Arguments: args}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// paramOrder returns parameter names sorted so validation failures are
// deterministic
func paramOrder(def Definition) []string {
	names := make([]string, 0, len(def.Parameters))
	for name := range def.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// coerce type-checks a present argument value, returning the canonical value
// or a failure reason. Integers accept numeric-looking strings; enums must
// match a declared value exactly.
func coerce(param Param, value any) (any, string) {
	switch param.Type {
	case TypeString:
		if s, ok := value.(string); ok {
			return s, ""
		}
		return nil, "expected a string"
	case TypeInteger:
		switch v := value.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, "expected an integer"
			}
			return int64(v), ""
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, "expected an integer"
			}
			return n, ""
		}
		return nil, "expected an integer"
	case TypeStringArray:
		values, ok := value.([]any)
		if !ok {
			return nil, "expected an array of strings"
		}
		result := make([]string, 0, len(values))
		for _, element := range values {
			s, ok := element.(string)
			if !ok {
				return nil, "expected an array of strings"
			}
			result = append(result, s)
		}
		return result, ""
	case TypeEnum:
		s, ok := value.(string)
		if !ok {
			return nil, "expected a string"
		}
		if slices.Contains(param.Enum, s) {
			return s, ""
		}
		return nil, fmt.Sprintf("must be one of %s", strings.Join(param.Enum, ", "))
	}
	return nil, "unsupported parameter type"
}
