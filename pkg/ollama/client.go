/*
ollama implements an API client for ollama
https://github.com/ollama/ollama/blob/main/docs/api.md
*/
package ollama

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	model string
}

var _ taskrelay.Chatter = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for an ollama endpoint, which should be something like
// "http://localhost:11434/api". The model is used for all chat turns.
func New(endPoint, model string, opts ...client.ClientOpt) (*Client, error) {
	if model == "" {
		return nil, taskrelay.ErrBadParameter.With("missing model")
	}

	// Create client
	client, err := client.New(append(opts, client.OptEndpoint(endPoint))...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{Client: client, model: model}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the model used for chat turns
func (ollama *Client) Model() string {
	return ollama.model
}
