package coordinator

import "errors"

var (
	// ErrInvalidBatchSize is returned when a loop is started with a batch
	// size below one.
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")

	// ErrCursorNotAdvancing is returned when the server answers a full page
	// without moving the continuation token. Continuing would fetch the same
	// page forever.
	ErrCursorNotAdvancing = errors.New("pull cursor did not advance on a full page")
)
