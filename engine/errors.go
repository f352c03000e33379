package engine

import "errors"

const defaultCommandQueueSize = 64

var (
	// ErrCommandQueueFull is returned by Submit when the render command queue is at capacity.
	ErrCommandQueueFull = errors.New("engine: command queue full")

	// ErrStopped is returned by Submit once the session has been asked to quit.
	ErrStopped = errors.New("engine: stopped")
)
