package heartbeat

import "errors"

var (
	// ErrNilBeat is returned by New when no beat function is supplied.
	ErrNilBeat = errors.New("heartbeat: beat function is nil")
	// ErrAlreadyRunning is returned by Run when the heartbeat is already running.
	ErrAlreadyRunning = errors.New("heartbeat: already running")
)
