package room

import "errors"

// Error taxonomy for room operations. All are local, recoverable conditions
// reported to the requesting client; a failed operation leaves room state
// unchanged.
var (
	ErrInvalidName    = errors.New("room name must not be empty or blank")
	ErrUnknownRoom    = errors.New("room not found")
	ErrUnknownPlayer  = errors.New("player not in room")
	ErrNotHost        = errors.New("only the host can start a round")
	ErrAlreadyRunning = errors.New("round already in progress")
)
