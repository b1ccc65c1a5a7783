package globals

import "errors"

var (
	ErrConnectionClosed = errors.New("connection closed unexpectedly")
	ErrLogWrite         = errors.New("force log write failed")
	ErrCacheOperation   = errors.New("stateCache operation failed")
)
