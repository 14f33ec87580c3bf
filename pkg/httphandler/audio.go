package httphandler

import (
	"io"
	"net/http"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	relay "github.com/mutablelogic/go-taskrelay/pkg/relay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// AudioRequest is an uploaded audio instruction.
// Accepts multipart/form-data with a file attachment.
type AudioRequest struct {
	File multipart.File `json:"file" help:"Audio file" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /audio
func AudioHandler(r *relay.Relay) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/audio", func(w http.ResponseWriter, req *http.Request) {
			switch req.Method {
			case http.MethodPost:
				var request AudioRequest
				if err := httprequest.Read(req, &request); err != nil {
					_ = httpresponse.Error(w, err)
					return
				} else if request.File.Body == nil {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With("missing file"))
					return
				}

				// Read the upload and detect the content type
				data, err := io.ReadAll(request.File.Body)
				if err != nil {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
					return
				} else if len(data) == 0 {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With("empty file"))
					return
				}

				// Perform the capture and return the outcome, which includes
				// the transcript
				outcome, err := r.CaptureAudio(req.Context(), request.File.Path, http.DetectContentType(data), data)
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
				Description: "Capture a spoken instruction and dispatch the resulting task",
			},
		})
}
