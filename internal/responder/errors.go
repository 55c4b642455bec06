package responder

import (
	"net/http"

	"github.com/go-chi/render"

	"blog/internal/domain"
)

const (
	createFailedMessage = "Failed to create the article. Please check your input."
	systemErrorMessage  = "A system error occurred. Please try again."
)

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string              `json:"status"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Input      any                 `json:"input,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, StatusText: "Resource not found."}

// ErrValidation reports field-keyed messages and echoes input back for re-display.
func ErrValidation(verr *domain.ValidationError, input any) render.Renderer {
	return &ErrResponse{
		Err:            verr,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "error",
		Errors:         verr.Fields,
		Input:          input,
	}
}

// ErrCreateRejected is returned when a business rule refused the create.
func ErrCreateRejected(err error, input any) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "error",
		Errors:         map[string][]string{"title": {createFailedMessage}},
		Input:          input,
	}
}

// ErrSystem hides err from the client.
func ErrSystem(err error, input any) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "error",
		Errors:         map[string][]string{"general": {systemErrorMessage}},
		Input:          input,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		Errors:         map[string][]string{"body": {err.Error()}},
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Error rendering response.",
	}
}
