/*
httphandler exposes the relay over HTTP: a /text endpoint for typed
instructions and an /audio endpoint for uploaded audio.
*/
package httphandler

import (
	"errors"
	"net/http"

	// Packages
	server "github.com/mutablelogic/go-server"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	taskrelay "github.com/mutablelogic/go-taskrelay"
	relay "github.com/mutablelogic/go-taskrelay/pkg/relay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func RegisterHandlers(r *relay.Relay, router server.HTTPRouter, middleware bool) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.(Router).RegisterFunc(path, handler, middleware, spec))
	}

	// Register handlers
	register(TextHandler(r))
	register(AudioHandler(r))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts a taskrelay.Err to an httpresponse.Err, preserving the
// original error message. Upstream collaborator failures map to 502 so the
// caller can distinguish them from this service's own faults.
func httpErr(err error) error {
	var relayErr taskrelay.Err
	if !errors.As(err, &relayErr) {
		return err
	}
	switch relayErr {
	case taskrelay.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case taskrelay.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case taskrelay.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case taskrelay.ErrUpstream:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
