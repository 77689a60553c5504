// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a valid client-supplied "X-Request-ID" header or generates
// a new UUIDv4, and stores the id in the request context. LoggerExtractor
// plugs into logger.WithContextExtractors so every record logged with the
// request context carries a request_id attribute.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Supplied ids longer than 128 characters or containing anything but
// letters, digits, '-' and '_' are replaced silently.
package requestid
