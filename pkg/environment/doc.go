// Package environment models the deployment environment (development,
// staging, production) and carries it through request contexts.
//
//	var cfg struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//	r.Use(environment.Middleware(cfg.Env))
//
//	if environment.IsDevelopment(r.Context()) {
//		// expose internal error messages
//	}
package environment
