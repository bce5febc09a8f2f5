// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a well-formed client "X-Request-ID" header or generates a
// UUID, stores it in the request context and echoes it in the response.
// LoggerExtractor plugs the ID into loggers built with pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
//
// Invalid or empty client IDs are silently replaced.
package requestid
