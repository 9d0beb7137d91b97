// Package logging builds the slog loggers used by ventas-admin and carries
// them, together with the request ID, through contexts.
//
//	logger := logging.NewLogger(os.Stderr)
//	logger.Info("browse started", slog.String("resource", "vendedores"))
//
//	ctx = logging.WithLogger(ctx, logger)
//	logging.WithRequestID(ctx, logging.FromContext(ctx)).Warn("retrying")
package logging
