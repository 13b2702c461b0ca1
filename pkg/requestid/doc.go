// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a client supplied X-Request-ID when it is a short HTTP
// token and otherwise generates a UUIDv4. The chosen ID is stored in the
// request context and echoed in the response header. LoggerExtractor plugs the
// ID into loggers built by pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	h := requestid.Middleware(mux)
package requestid
