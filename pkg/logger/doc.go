// Package logger builds log/slog loggers for the validation engine.
//
// New returns a *slog.Logger configured by functional options: output format
// (text or JSON), minimum level, static attributes and context extractors that
// copy request-scoped values into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "checkout"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "validation finished",
//	    logger.PassID(id),
//	    logger.ViolationCount(errs.Len()),
//	)
//
// Attribute helpers keep key names consistent across packages. Helpers taking
// an optional value return an empty slog.Attr for nil input, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
