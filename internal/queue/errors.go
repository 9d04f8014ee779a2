package queue

import "errors"

var (
	// ErrQueueFull is returned when the mail queue is at capacity.
	ErrQueueFull = errors.New("mail queue is full")
	// ErrQueueClosed is returned when using a closed mail queue.
	ErrQueueClosed = errors.New("mail queue is closed")
)
