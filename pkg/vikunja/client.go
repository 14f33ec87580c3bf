/*
vikunja implements an API client for the Vikunja task tracker
https://vikunja.io/docs/api/
*/
package vikunja

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for a Vikunja endpoint, which should be something like
// "http://localhost:3456/api/v1", with a bearer token for authentication
func New(endPoint, token string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing token
	if token == "" {
		return nil, taskrelay.ErrBadParameter.With("missing API token")
	}

	// Create client
	opts = append(opts,
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token}),
	)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{client}, nil
}
