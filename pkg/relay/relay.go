/*
relay orchestrates one capture: transcript in, dispatched task out. The
chat model is an untrusted producer, so extraction failures are recovered
into reportable outcomes rather than errors; only upstream service failures
propagate as errors.
*/
package relay

import (
	"context"
	"errors"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	taskrelay "github.com/mutablelogic/go-taskrelay"
	anylist "github.com/mutablelogic/go-taskrelay/pkg/anylist"
	duedate "github.com/mutablelogic/go-taskrelay/pkg/duedate"
	prompt "github.com/mutablelogic/go-taskrelay/pkg/prompt"
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
	vikunja "github.com/mutablelogic/go-taskrelay/pkg/vikunja"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TaskService creates project tasks downstream
type TaskService interface {
	CreateTask(ctx context.Context, task vikunja.Task) (*vikunja.TaskResponse, error)
}

// GroceryService adds grocery items downstream
type GroceryService interface {
	AddItem(ctx context.Context, item anylist.Item) (*anylist.ItemResponse, error)
}

// Relay wires the collaborators together. Construct with New; a Relay is
// immutable and safe for concurrent use.
type Relay struct {
	chatter     taskrelay.Chatter
	transcriber taskrelay.Transcriber
	tasks       TaskService
	groceries   GroceryService

	catalog    *toolcall.Catalog
	aliases    map[string]string
	open       string
	close      string
	extractor  *toolcall.Extractor
	normalizer *duedate.Normalizer
	system     string

	loc    *time.Location
	now    func() time.Time
	tracer trace.Tracer
}

// Opt is a configuration option for a Relay
type Opt func(*Relay) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const tracerName = "github.com/mutablelogic/go-taskrelay/pkg/relay"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a relay. A chatter is required; transcriber and downstream
// services are optional and their operations fail with ErrNotImplemented
// when absent.
func New(opts ...Opt) (*Relay, error) {
	relay := &Relay{
		aliases: DefaultAliases(),
		open:    toolcall.DefaultOpenSentinel,
		close:   toolcall.DefaultCloseSentinel,
		loc:     time.UTC,
		now:     time.Now,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if err := opt(relay); err != nil {
			return nil, err
		}
	}
	if relay.chatter == nil {
		return nil, taskrelay.ErrBadParameter.With("missing chat client")
	}

	// Default catalog
	if relay.catalog == nil {
		catalog, err := toolcall.NewCatalog(DefaultDefinitions()...)
		if err != nil {
			return nil, err
		}
		relay.catalog = catalog
	}

	// The extractor and the system prompt are built from the same catalog,
	// so they cannot drift apart.
	extractor, err := toolcall.NewExtractor(relay.catalog,
		toolcall.WithSentinels(relay.open, relay.close),
		toolcall.WithAliases(relay.aliases),
	)
	if err != nil {
		return nil, err
	}
	relay.extractor = extractor

	system, err := prompt.System(relay.catalog, relay.open, relay.close)
	if err != nil {
		return nil, err
	}
	relay.system = system
	relay.normalizer = duedate.New(relay.loc)

	return relay, nil
}

// WithChatter sets the chat model client
func WithChatter(chatter taskrelay.Chatter) Opt {
	return func(r *Relay) error {
		r.chatter = chatter
		return nil
	}
}

// WithTranscriber sets the speech-to-text client
func WithTranscriber(transcriber taskrelay.Transcriber) Opt {
	return func(r *Relay) error {
		r.transcriber = transcriber
		return nil
	}
}

// WithTaskService sets the project-task client
func WithTaskService(tasks TaskService) Opt {
	return func(r *Relay) error {
		r.tasks = tasks
		return nil
	}
}

// WithGroceryService sets the grocery-list client
func WithGroceryService(groceries GroceryService) Opt {
	return func(r *Relay) error {
		r.groceries = groceries
		return nil
	}
}

// WithCatalog replaces the built-in tool catalog and alias table
func WithCatalog(catalog *toolcall.Catalog, aliases map[string]string) Opt {
	return func(r *Relay) error {
		if catalog == nil {
			return taskrelay.ErrBadParameter.With("missing catalog")
		}
		r.catalog = catalog
		if aliases != nil {
			r.aliases = aliases
		}
		return nil
	}
}

// WithSentinels sets the marker pair wrapping tool call payloads
func WithSentinels(open, close string) Opt {
	return func(r *Relay) error {
		if open == "" || close == "" {
			return taskrelay.ErrBadParameter.With("empty sentinel")
		}
		r.open = open
		r.close = close
		return nil
	}
}

// WithTimezone sets the civil zone in which date-only input is interpreted
func WithTimezone(loc *time.Location) Opt {
	return func(r *Relay) error {
		if loc == nil {
			return taskrelay.ErrBadParameter.With("missing timezone")
		}
		r.loc = loc
		return nil
	}
}

// WithClock sets the reference clock for relative date resolution
func WithClock(now func() time.Time) Opt {
	return func(r *Relay) error {
		if now == nil {
			return taskrelay.ErrBadParameter.With("missing clock")
		}
		r.now = now
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SystemPrompt returns the rendered system instruction sent with every turn
func (r *Relay) SystemPrompt() string {
	return r.system
}

// CaptureText sends an instruction through the chat model and dispatches
// the resulting tool call. A reply the model fouled up yields a reportable
// outcome, not an error; upstream service failures propagate as errors
// wrapping ErrUpstream.
func (r *Relay) CaptureText(ctx context.Context, text string) (*Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "taskrelay.CaptureText")
	defer span.End()

	if text == "" {
		return nil, taskrelay.ErrBadParameter.With("empty instruction")
	}

	reply, err := r.chatter.Chat(ctx, r.system, text)
	if err != nil {
		span.RecordError(err)
		return nil, taskrelay.ErrUpstream.With(err)
	}

	outcome := &Outcome{ID: uuid.NewString()}
	invocation, err := r.extractor.Extract(reply)
	if err != nil {
		var extractErr *toolcall.Error
		if errors.As(err, &extractErr) {
			return r.report(span, outcome, extractErr), nil
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("tool", invocation.Name))
	if err := r.dispatch(ctx, invocation, outcome); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return outcome, nil
}

// CaptureAudio transcribes audio bytes and feeds the transcript through the
// same path as typed text
func (r *Relay) CaptureAudio(ctx context.Context, filename, mimetype string, data []byte) (*Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "taskrelay.CaptureAudio")
	defer span.End()

	if r.transcriber == nil {
		return nil, taskrelay.ErrNotImplemented.With("no transcriber configured")
	}

	transcript, err := r.transcriber.Transcribe(ctx, filename, mimetype, data)
	if err != nil {
		span.RecordError(err)
		return nil, taskrelay.ErrUpstream.With(err)
	}

	outcome, err := r.CaptureText(ctx, transcript)
	if err != nil {
		return nil, err
	}
	outcome.Transcript = transcript
	return outcome, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// report converts a classified extraction failure into a user-visible
// outcome. The captured payload stays on the trace for diagnostics and is
// never shown to the end user.
func (r *Relay) report(span trace.Span, outcome *Outcome, err *toolcall.Error) *Outcome {
	if err.Raw != "" {
		span.SetAttributes(attribute.String("toolcall.raw", err.Raw))
	}
	outcome.OK = false
	switch err.Kind {
	case taskrelay.ErrUnknownTool:
		outcome.Tool = err.Tool
		outcome.Message = "unsupported action: " + err.Tool
	case taskrelay.ErrBadArgument:
		outcome.Tool = err.Tool
		outcome.Message = err.Error()
	default:
		outcome.Message = "could not determine an action"
	}
	return outcome
}
