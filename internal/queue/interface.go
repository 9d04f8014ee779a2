package queue

import "context"

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks coursehub/internal/queue Queue

// Queue holds mail jobs waiting for delivery.
type Queue interface {
	// Enqueue adds a job without blocking.
	Enqueue(job MailJob) error
	// Dequeue blocks until a job is available, ctx is done, or the queue closes.
	Dequeue(ctx context.Context) (MailJob, error)
	// Close stops accepting jobs.
	Close()
	// Len returns the number of waiting jobs.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

var _ Queue = (*MemoryQueue)(nil)
