/*
anylist implements an API client for an AnyList sidecar bridge, which exposes
grocery lists over a small REST surface on the local network.
*/
package anylist

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

// Item is an add-item request
type Item struct {
	ListName string `json:"-"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// ItemResponse is the added item
type ItemResponse struct {
	ID       string `json:"id,omitempty"`
	ListName string `json:"list_name"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for an AnyList bridge endpoint. The token is optional
// for bridges on a trusted network.
func New(endPoint, token string, opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts, client.OptEndpoint(endPoint))
	if token != "" {
		opts = append(opts, client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token}))
	}
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (i ItemResponse) String() string {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// AddItem adds an item to the named list
func (anylist *Client) AddItem(ctx context.Context, item Item) (*ItemResponse, error) {
	if item.ListName == "" {
		return nil, taskrelay.ErrBadParameter.With("missing list name")
	}
	if item.Name == "" {
		return nil, taskrelay.ErrBadParameter.With("missing item name")
	}

	// Request
	req, err := client.NewJSONRequest(item)
	if err != nil {
		return nil, err
	}

	// Response
	var response ItemResponse
	if err := anylist.DoWithContext(ctx, req, &response, client.OptPath("lists", item.ListName, "items")); err != nil {
		return nil, err
	}

	// Return the added item
	return &response, nil
}
