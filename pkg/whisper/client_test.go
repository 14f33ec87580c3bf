package whisper_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
	whisper "github.com/mutablelogic/go-taskrelay/pkg/whisper"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Transcribe_001(t *testing.T) {
	assert := assert.New(t)

	var gotPath, gotOutput, gotFilename string
	var gotData []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOutput = r.URL.Query().Get("output")
		file, header, err := r.FormFile("audio_file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotData, _ = io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"text": "add milk to the grocery list"})
	}))
	defer server.Close()

	client, err := whisper.New(server.URL)
	if !assert.NoError(err) {
		t.SkipNow()
	}

	transcript, err := client.Transcribe(context.Background(), "voice.ogg", "audio/ogg", []byte("OggS fake audio"))
	if assert.NoError(err) {
		assert.Equal("add milk to the grocery list", transcript)
	}

	// The upload is a multipart form against the asr path with json output
	assert.Equal("/asr", gotPath)
	assert.Equal("json", gotOutput)
	assert.Equal("voice.ogg", gotFilename)
	assert.Equal([]byte("OggS fake audio"), gotData)
}

func Test_Transcribe_002(t *testing.T) {
	assert := assert.New(t)

	client, err := whisper.New("http://localhost:9000")
	if !assert.NoError(err) {
		t.SkipNow()
	}

	// Empty audio is rejected before any request is made
	_, err = client.Transcribe(context.Background(), "voice.ogg", "audio/ogg", nil)
	assert.ErrorIs(err, taskrelay.ErrBadParameter)
}
