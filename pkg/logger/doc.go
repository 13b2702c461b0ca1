// Package logger builds *slog.Logger instances with functional options,
// attribute helpers and context-driven attribute injection.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler by Format and wraps it
// in LogHandlerDecorator, which runs every registered ContextExtractor per
// record (for example requestid.LoggerExtractor).
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "cookiewire"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "rejected cookie", logger.Mode(rawcookie.Strict), logger.ParseError(err))
//
// Attribute helpers return an empty slog.Attr for nil errors and empty IDs,
// which slog drops, so callers need no nil checks.
package logger
