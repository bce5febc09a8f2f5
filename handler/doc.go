// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a typed request value and returns a
// Response. Wrap turns it into an http.HandlerFunc: binders fill the request
// value, decorators wrap the call, and every failure is passed to one
// ErrorHandler.
//
//	func (s *Service) get(ctx handler.Context, req getRequest) handler.Response {
//		l, err := s.Get(ctx, req.ID)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(l)
//	}
//
//	r.Get("/{id}", handler.Wrap(s.get,
//		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, getRequest](errorHandler),
//	))
//
// # Responses
//
// JSON renders the envelope {data, meta, error}:
//
//	handler.JSON(listings, handler.WithJSONMeta(map[string]any{"total": n}))
//	handler.JSON(receipt, handler.WithJSONStatus(http.StatusAccepted))
//
// Error hands err to the configured ErrorHandler instead of rendering.
//
// # Errors
//
// ClassifyError maps errors to HTTP status codes: validator.ValidationErrors
// become 422 with per-field details, HTTPError values keep their own code,
// binder errors become 400, 413 or 415, context cancellation becomes 408 and
// anything else 500. NewErrorHandler logs and renders the classified error.
package handler
