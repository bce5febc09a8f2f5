package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/studyshelf/pkg/logger"
)

// Check reports whether a dependency is ready to serve traffic.
type Check func(ctx context.Context) error

// HealthCheckHandler returns a handler usable as liveness or readiness probe.
//
// With no checks it answers 200 "ALIVE". Otherwise every check runs with the
// request context; all passing yields 200 "READY", the first failure yields
// 503 "NOT_READY".
//
//	r.Get("/health", httpserver.HealthCheckHandler(log))
//	r.Get("/ready", httpserver.HealthCheckHandler(log, catalogCheck))
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("healthcheck"),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
