// Package account accepts login and signup forms.
//
// Forms are validated with the svc/forms rules and acknowledged after a
// simulated processing delay. The delay honors context cancellation, so a
// client that disconnects frees the request immediately. Nothing is persisted.
//
//	svc := account.NewService(cfg, account.WithLogger(log))
//	r.Mount("/auth", svc.Handle())
package account
