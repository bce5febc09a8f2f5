package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/pkg/binder"
	"github.com/dmitrymomot/studyshelf/pkg/logger"
	"github.com/dmitrymomot/studyshelf/svc/forms"
)

// ErrUnknownRuleSet is returned for a rule set name that forms does not define.
var ErrUnknownRuleSet = errors.New("unknown rule set")

// FormValidation serves live form validation: a client posts the current
// field values and receives the normalized record or per-field errors.
type FormValidation struct {
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type FormValidationOption func(*FormValidation)

func WithValidationLogger(l *slog.Logger) FormValidationOption {
	return func(f *FormValidation) {
		if l != nil {
			f.logger = l
		}
	}
}

func WithValidationErrorHandler(h handler.ErrorHandler[handler.Context]) FormValidationOption {
	return func(f *FormValidation) {
		if h != nil {
			f.errorHandler = h
		}
	}
}

func NewFormValidation(opts ...FormValidationOption) *FormValidation {
	f := &FormValidation{
		logger:       slog.Default(),
		errorHandler: handler.NewErrorHandler(slog.Default()),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Handle serves POST /{ruleset}/validate with a JSON object of strings.
func (f *FormValidation) Handle() http.Handler {
	r := chi.NewRouter()

	r.With(f.requireRuleSet).Post("/{ruleset}/validate", handler.Wrap(f.validate,
		handler.WithBinders[handler.Context, map[string]string](binder.JSON()),
		handler.WithErrorHandler[handler.Context, map[string]string](f.errorHandler),
	))

	return r
}

// requireRuleSet answers 404 for unknown rule sets before the body is read.
func (f *FormValidation) requireRuleSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		set := forms.RuleSet(chi.URLParam(r, "ruleset"))
		if !set.Valid() {
			f.errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrNotFound, ErrUnknownRuleSet))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FormValidation) validate(ctx handler.Context, values map[string]string) handler.Response {
	set := forms.RuleSet(chi.URLParam(ctx.Request(), "ruleset"))

	record, err := forms.Validate(set, values)
	if err != nil {
		return handler.Error(err)
	}

	f.logger.DebugContext(ctx, "form validated",
		logger.Component("forms"),
		logger.RuleSet(string(set)),
	)
	return handler.JSON(record, handler.WithJSONMeta(map[string]any{
		"ruleset": set,
	}))
}
