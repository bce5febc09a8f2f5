package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/pkg/binder"
	"github.com/dmitrymomot/studyshelf/svc/forms"
)

// Handle returns the /login and /signup routes. Both accept JSON bodies.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", handler.Wrap(s.login,
		handler.WithBinders[handler.Context, forms.LoginInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, forms.LoginInput](s.errorHandler),
	))
	r.Post("/signup", handler.Wrap(s.signup,
		handler.WithBinders[handler.Context, forms.SignupInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, forms.SignupInput](s.errorHandler),
	))

	return r
}

func (s *Service) login(ctx handler.Context, in forms.LoginInput) handler.Response {
	ack, err := s.Login(ctx, in)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(ack)
}

func (s *Service) signup(ctx handler.Context, in forms.SignupInput) handler.Response {
	ack, err := s.Signup(ctx, in)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(ack, handler.WithJSONStatus(http.StatusCreated))
}
