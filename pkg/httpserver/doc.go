// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener, serves until the context is cancelled or the
// process receives SIGINT/SIGTERM, then drains in-flight requests within the
// shutdown timeout. Options are validated eagerly and panic on nonsense
// values so misconfiguration surfaces at startup.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithMaxHeaderBytes(16<<10),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
