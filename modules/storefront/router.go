package storefront

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/pkg/environment"
	"github.com/dmitrymomot/studyshelf/pkg/httpserver"
	"github.com/dmitrymomot/studyshelf/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Environment  environment.Environment
	Logger       *slog.Logger
	ErrorHandler handler.ErrorHandler[handler.Context]

	Account    Mountable
	Listings   Mountable
	Validation Mountable

	// ReadinessChecks back GET /ready.
	ReadinessChecks []httpserver.Check
}

// Router creates the storefront router.
//
//	r := storefront.Router(storefront.RouterOptions{
//		Environment: cfg.Env,
//		Logger:      log,
//		Account:     accounts,
//		Listings:    listings,
//		Validation:  storefront.NewFormValidation(),
//	})
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	errorHandler := opts.ErrorHandler
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(opts.Environment),
		middleware.Recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errorHandler(handler.NewContext(w, req), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		errorHandler(handler.NewContext(w, req), handler.ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, opts.ReadinessChecks...))

	if opts.Account != nil {
		r.Mount("/auth", opts.Account.Handle())
	}
	if opts.Validation != nil {
		r.Mount("/forms", opts.Validation.Handle())
	}
	if opts.Listings != nil {
		r.Mount("/listings", opts.Listings.Handle())
	}

	return r
}
