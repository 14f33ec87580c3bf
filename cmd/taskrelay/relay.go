package main

import (
	"os"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	anylist "github.com/mutablelogic/go-taskrelay/pkg/anylist"
	ollama "github.com/mutablelogic/go-taskrelay/pkg/ollama"
	relay "github.com/mutablelogic/go-taskrelay/pkg/relay"
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
	vikunja "github.com/mutablelogic/go-taskrelay/pkg/vikunja"
	whisper "github.com/mutablelogic/go-taskrelay/pkg/whisper"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientOpts returns the HTTP client options shared by all collaborators
func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{
		client.OptTimeout(httpTimeout),
	}
	if g.Debug {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	return result
}

// Relay builds the capture relay from the configured collaborators. The
// chat model is required; transcription and the downstream services are
// wired only when their endpoints are set.
func (g *Globals) Relay() (*relay.Relay, error) {
	clientOpts := g.clientOpts()

	// Chat model
	chatter, err := ollama.New(g.OllamaEndpoint, g.OllamaModel, clientOpts...)
	if err != nil {
		return nil, err
	}
	opts := []relay.Opt{
		relay.WithChatter(chatter),
	}

	// Speech-to-text
	if g.WhisperEndpoint != "" {
		transcriber, err := whisper.New(g.WhisperEndpoint, clientOpts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, relay.WithTranscriber(transcriber))
	}

	// Project tasks
	if g.VikunjaEndpoint != "" {
		tasks, err := vikunja.New(g.VikunjaEndpoint, g.VikunjaToken, clientOpts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, relay.WithTaskService(tasks))
	}

	// Grocery lists
	if g.AnyListEndpoint != "" {
		groceries, err := anylist.New(g.AnyListEndpoint, g.AnyListToken, clientOpts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, relay.WithGroceryService(groceries))
	}

	// Timezone for due dates
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return nil, err
	}
	opts = append(opts, relay.WithTimezone(loc))

	// Optional tool catalog override
	if g.Catalog != "" {
		file, err := toolcall.Load(g.Catalog)
		if err != nil {
			return nil, err
		}
		catalog, err := file.Catalog()
		if err != nil {
			return nil, err
		}
		opts = append(opts, relay.WithCatalog(catalog, file.Aliases))
	}

	return relay.New(opts...)
}
