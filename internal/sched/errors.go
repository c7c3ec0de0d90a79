package sched

import "errors"

var (
	ErrLimitExceeded   = errors.New("task limit exceeded")
	ErrNoSuchTask      = errors.New("no such task")
	ErrInvalidState    = errors.New("invalid initial task state")
	ErrNilExecutor     = errors.New("nil executor")
	ErrInvalidCapacity = errors.New("invalid scheduler capacity")
	ErrPassInProgress  = errors.New("scheduler pass in progress")
)
