package environment

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned by Parse for unsupported names.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Parse accepts the canonical names and the short aliases dev, stage and prod.
// Matching is case-insensitive.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "staging", "stage":
		return Staging, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

// UnmarshalText lets config loaders decode APP_ENV directly.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

func (e Environment) String() string {
	return string(e)
}

type contextKey struct{}

func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx or "" when absent.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

func IsStaging(ctx context.Context) bool {
	return FromContext(ctx) == Staging
}

func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}
