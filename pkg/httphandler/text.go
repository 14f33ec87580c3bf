package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	relay "github.com/mutablelogic/go-taskrelay/pkg/relay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TextRequest is a typed instruction
type TextRequest struct {
	Prompt string `json:"prompt" help:"Instruction text"`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /text
func TextHandler(r *relay.Relay) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/text", func(w http.ResponseWriter, req *http.Request) {
			switch req.Method {
			case http.MethodPost:
				var request TextRequest
				if err := httprequest.Read(req, &request); err != nil {
					_ = httpresponse.Error(w, err)
					return
				} else if request.Prompt == "" {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With("missing prompt"))
					return
				}

				// Perform the capture and return the outcome
				outcome, err := r.CaptureText(req.Context(), request.Prompt)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(req), outcome)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), req.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Post: &openapi.Operation{
				Description: "Capture a typed instruction and dispatch the resulting task",
			},
		})
}
