// Package logger builds *slog.Logger instances with functional options,
// shared attribute helpers, and context-driven attributes.
//
// New picks a text or JSON handler and wraps it with LogHandlerDecorator, which
// runs every registered ContextExtractor when a record is handled. That is how
// request-scoped values such as the request ID reach each log line.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "listing submitted",
//		logger.Component("listing"),
//		logger.ReceiptID(receipt.ID),
//	)
//
// Options:
//
//   - WithEnvironment: text at DEBUG for development, JSON at INFO otherwise.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum level; ParseLevel reads LOG_LEVEL values.
//   - WithAttr: static attributes.
//   - WithContextExtractors: attributes pulled from context.
//
// Attribute helpers (Error, Errors, RequestID, ListingID, ReceiptID, Category,
// RuleSet, Fields, Component, Event) keep key names consistent. Error and
// Errors return an empty Attr for nil errors, so no nil check is needed:
//
//	log.Info("operation finished", logger.Error(err))
package logger
