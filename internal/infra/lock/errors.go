package lock

import "errors"

var (
	ErrAcquire     = errors.New("lock: failed to acquire")
	ErrLockTimeout = errors.New("lock: acquire cancelled or timed out")
	ErrLockLost    = errors.New("lock: ownership lost while held")
)
