// Package httpserver runs the storefront handler with env-driven timeouts
// and a bounded graceful shutdown, and provides health-check handlers.
//
// Run binds first, so a bad address fails immediately with ErrListen. It
// then serves until the context is cancelled:
//
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(ctx context.Context, addr net.Addr) {
//			log.InfoContext(ctx, "listening", slog.String("addr", addr.String()))
//		}),
//	)
//	err := srv.Run(ctx, router)
//
// HealthCheckHandler answers liveness probes, or readiness probes when Check
// functions are supplied.
package httpserver
