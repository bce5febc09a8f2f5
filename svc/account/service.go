package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/pkg/latency"
	"github.com/dmitrymomot/studyshelf/pkg/logger"
	"github.com/dmitrymomot/studyshelf/pkg/validator"
	"github.com/dmitrymomot/studyshelf/svc/forms"
)

// Config holds account service settings.
type Config struct {
	ProcessingDelay time.Duration `env:"AUTH_PROCESSING_DELAY" envDefault:"1500ms"`
}

const (
	loginMessage  = "Login successful! Welcome back."
	signupMessage = "Account created successfully! Welcome to StudyShelf."
)

// Ack acknowledges a login or signup request.
// No credentials are stored or checked.
type Ack struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
}

type Service struct {
	cfg          Config
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorHandler sets the error handler used by the HTTP routes.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		s.errorHandler = h
	}
}

func NewService(cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login validates the login form and acknowledges it after the processing delay.
func (s *Service) Login(ctx context.Context, in forms.LoginInput) (Ack, error) {
	creds, err := forms.ValidateLogin(in)
	if err != nil {
		s.rejected(ctx, "login", err)
		return Ack{}, err
	}

	if err := s.process(ctx); err != nil {
		return Ack{}, err
	}

	s.logger.InfoContext(ctx, "login accepted", logger.Component("account"), logger.Event("login"))
	return Ack{Message: loginMessage, Email: creds.Email}, nil
}

// Signup validates the signup form and acknowledges it after the processing delay.
func (s *Service) Signup(ctx context.Context, in forms.SignupInput) (Ack, error) {
	req, err := forms.ValidateSignup(in)
	if err != nil {
		s.rejected(ctx, "signup", err)
		return Ack{}, err
	}

	if err := s.process(ctx); err != nil {
		return Ack{}, err
	}

	s.logger.InfoContext(ctx, "signup accepted", logger.Component("account"), logger.Event("signup"))
	return Ack{Message: signupMessage, Email: req.Email, Name: req.Name}, nil
}

// rejected logs failing field names only; values may hold credentials.
func (s *Service) rejected(ctx context.Context, event string, err error) {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return
	}
	s.logger.DebugContext(ctx, "account form rejected",
		logger.Component("account"),
		logger.Event(event),
		logger.Fields(verrs.Fields()...),
	)
}

func (s *Service) process(ctx context.Context) error {
	if err := latency.Wait(ctx, s.cfg.ProcessingDelay); err != nil {
		return errors.Join(ErrRequestCancelled, err)
	}
	return nil
}
