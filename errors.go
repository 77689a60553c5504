package coderland

import "errors"

var (
	// ErrAlreadyStarted is returned by Run on an App that has already been run.
	ErrAlreadyStarted = errors.New("coderland: app already started")
	// ErrNotRunning is reported by the readiness probe outside the running state.
	ErrNotRunning = errors.New("coderland: app is not running")
	// ErrInvalidLogFormat is returned for LOG_FORMAT values other than text or json.
	ErrInvalidLogFormat = errors.New("coderland: invalid log format")
)
