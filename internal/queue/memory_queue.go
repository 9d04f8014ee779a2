// Package queue delivers notification email in the background.
package queue

import (
	"context"
	"sync"

	"coursehub/internal/mailer"
)

// MailJob is one email awaiting delivery.
type MailJob struct {
	Message    mailer.Message
	RetryCount int
}

// MemoryQueue is a bounded in-process mail queue.
type MemoryQueue struct {
	jobs     chan MailJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a queue holding at most capacity jobs.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan MailJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job, failing fast when the queue is full or closed.
// The read lock is held so Close cannot close the channel mid-send.
func (q *MemoryQueue) Enqueue(job MailJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job. Jobs queued before Close are still drained.
func (q *MemoryQueue) Dequeue(ctx context.Context) (MailJob, error) {
	select {
	case <-ctx.Done():
		return MailJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return MailJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close is idempotent.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Reset discards pending jobs and reopens the queue. Used between API tests.
func (q *MemoryQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = false
	q.jobs = make(chan MailJob, q.capacity)
}

// Len returns the number of waiting jobs.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
