package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/studyshelf/pkg/binder"
	"github.com/dmitrymomot/studyshelf/pkg/environment"
	"github.com/dmitrymomot/studyshelf/pkg/logger"
	"github.com/dmitrymomot/studyshelf/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps an error to its HTTP status, code and message.
//
//   - validator.ValidationErrors: 422 with per-field details
//   - HTTPError: its own code and key
//   - binder errors: 400, 413 or 415
//   - context cancellation: 408
//   - anything else: 500 with a generic message
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var (
		validationErrs validator.ValidationErrors
		httpErr        HTTPError
	)

	switch {
	case errors.As(err, &validationErrs):
		info.StatusCode = ErrUnprocessableEntity.Code
		info.Code = ErrUnprocessableEntity.Key
		info.Message = "Validation failed"
		info.Details = validationErrs.Values()

	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)

	case errors.Is(err, binder.ErrRequestTooLarge):
		info.StatusCode = ErrRequestEntityTooLarge.Code
		info.Code = ErrRequestEntityTooLarge.Key
		info.Message = err.Error()

	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = err.Error()

	case binder.IsBindingError(err):
		info.StatusCode = ErrBadRequest.Code
		info.Code = ErrBadRequest.Key
		info.Message = err.Error()

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		info.StatusCode = ErrRequestTimeout.Code
		info.Code = ErrRequestTimeout.Key
		info.Message = http.StatusText(ErrRequestTimeout.Code)
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// logError logs the error with request context. The request ID is added by
// the logger's context extractors.
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()

	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the JSON error handler. It classifies the error,
// logs client errors at WARN and server errors at ERROR, then writes the
// error envelope. Internal error messages are only exposed in development.
// Configure it once in main and pass it to every service.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := ClassifyError(err)
		logError(log, ctx, err, info)
		if !isClientError(info.StatusCode) && environment.IsDevelopment(ctx) {
			info.Message = err.Error()
		}
		renderError(ctx.ResponseWriter(), ctx.Request(), info)
	}
}
