package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/modules/storefront"
	"github.com/dmitrymomot/studyshelf/pkg/config"
	"github.com/dmitrymomot/studyshelf/pkg/environment"
	"github.com/dmitrymomot/studyshelf/pkg/httpserver"
	"github.com/dmitrymomot/studyshelf/pkg/logger"
	"github.com/dmitrymomot/studyshelf/pkg/requestid"
	"github.com/dmitrymomot/studyshelf/svc/account"
	"github.com/dmitrymomot/studyshelf/svc/listing"
)

type appConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string                  `env:"APP_NAME" envDefault:"studyshelf"`
	LogLevel string                  `env:"LOG_LEVEL"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("storefront stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		serverCfg  httpserver.Config
		listingCfg listing.Config
		accountCfg account.Config
	)
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	if err := config.Load(&serverCfg); err != nil {
		return err
	}
	if err := config.Load(&listingCfg); err != nil {
		return err
	}
	if err := config.Load(&accountCfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if appCfg.LogLevel != "" {
		level, err := logger.ParseLevel(appCfg.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	catalog, err := loadCatalog(listingCfg.CatalogFile)
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(log)

	router := storefront.Router(storefront.RouterOptions{
		Environment:  appCfg.Env,
		Logger:       log,
		ErrorHandler: errorHandler,
		Account: account.NewService(accountCfg,
			account.WithLogger(log),
			account.WithErrorHandler(errorHandler),
		),
		Listings: listing.NewService(listingCfg, catalog,
			listing.WithLogger(log),
			listing.WithErrorHandler(errorHandler),
		),
		Validation: storefront.NewFormValidation(
			storefront.WithValidationLogger(log),
			storefront.WithValidationErrorHandler(errorHandler),
		),
		ReadinessChecks: []httpserver.Check{
			func(ctx context.Context) error {
				_, err := catalog.List(ctx)
				return err
			},
		},
	})

	srv := httpserver.NewFromConfig(serverCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(announce(log, router, catalog)),
	)
	return srv.Run(ctx, router)
}

// announce logs the catalog size and every mounted route once the
// server is listening.
func announce(log *slog.Logger, router chi.Routes, catalog listing.Source) httpserver.StartHook {
	return func(ctx context.Context, addr net.Addr) {
		listings, err := catalog.List(ctx)
		if err != nil {
			log.WarnContext(ctx, "catalog unavailable at startup", logger.Error(err))
		} else {
			log.InfoContext(ctx, "catalog loaded", slog.Int("listings", len(listings)))
		}

		routes := make([]string, 0, 16)
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			routes = append(routes, method+" "+route)
			return nil
		})
		log.InfoContext(ctx, "storefront ready",
			slog.String("addr", addr.String()),
			slog.Any("routes", routes),
		)
	}
}

// loadCatalog reads the YAML catalog when path is set and falls back to the
// built-in listings otherwise.
func loadCatalog(path string) (*listing.StaticCatalog, error) {
	if path == "" {
		return listing.DefaultCatalog(), nil
	}
	return listing.LoadCatalogFile(path)
}
