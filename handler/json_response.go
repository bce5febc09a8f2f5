package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information.
// Details maps a field name to its messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response with v as data.
//
//	return handler.JSON(listings, handler.WithJSONMeta(map[string]any{"total": len(listings)}))
//	return handler.JSON(ack, handler.WithJSONStatus(http.StatusCreated))
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	if body, ok := v.(JSONResponse); ok {
		r.body = body
	} else {
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// errorResponse defers rendering to the error handler configured in Wrap,
// so handler failures are classified and logged in one place.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that routes err to the error handler.
// A nil err is treated as an internal error.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}

func renderError(w http.ResponseWriter, r *http.Request, info ErrorInfo) {
	resp := jsonResponse{
		status: info.StatusCode,
		body: JSONResponse{
			Error: &ErrorDetail{
				Code:    info.Code,
				Message: info.Message,
				Details: info.Details,
			},
		},
	}
	// Encoding ErrorDetail cannot fail; a write error means the client is gone.
	_ = resp.Render(w, r)
}
