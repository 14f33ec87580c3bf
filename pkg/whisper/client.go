/*
whisper implements an API client for a whisper ASR webservice
https://github.com/ahmetoner/whisper-asr-webservice
*/
package whisper

import (
	"bytes"
	"context"
	"io"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ taskrelay.Transcriber = (*Client)(nil)

// Transcription response
type Transcription struct {
	Text string `json:"text"`
}

type reqTranscribe struct {
	File multipart.File `json:"audio_file"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for a whisper endpoint, which should be something like
// "http://localhost:9000"
func New(endPoint string, opts ...client.ClientOpt) (*Client, error) {
	client, err := client.New(append(opts, client.OptEndpoint(endPoint))...)
	if err != nil {
		return nil, err
	}
	return &Client{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe uploads audio bytes and returns the transcript. A non-2xx
// response propagates with the upstream status and body.
func (whisper *Client) Transcribe(ctx context.Context, filename, mimetype string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", taskrelay.ErrBadParameter.With("empty audio")
	}

	// Request
	req, err := client.NewMultipartRequest(reqTranscribe{
		File: multipart.File{
			Path: filename,
			Body: io.NopCloser(bytes.NewReader(data)),
		},
	}, client.ContentTypeJson)
	if err != nil {
		return "", err
	}

	// Response
	var response Transcription
	if err := whisper.DoWithContext(ctx, req, &response, client.OptPath("asr"), client.OptQuery(url.Values{
		"output": []string{"json"},
	})); err != nil {
		return "", err
	}

	// Return the transcript
	return response.Text, nil
}
