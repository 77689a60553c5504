// Package logger builds the process logger on top of log/slog.
//
// New returns a *slog.Logger configured by Option values:
//
//   - WithEnvironment selects a per-environment preset (text/DEBUG for
//     development, JSON/INFO for staging and production) and tags records
//     with the service name and environment.
//   - WithFormat, WithLevel and WithOutput override individual settings.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors injects attributes taken from the context given to
//     InfoContext and friends, for example the request id.
//
// Helpers in attr.go (RequestNumber, RemoteHost, Uptime, Error, ...) keep
// attribute keys consistent across packages. Error returns an empty Attr for a
// nil error, so it can be passed unconditionally.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "coderland"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//	log.InfoContext(ctx, "Request #1 from 127.0.0.1", logger.RequestNumber(1))
package logger
