package queue

import (
	"context"
	"testing"
	"time"

	"coursehub/internal/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(to string) MailJob {
	return MailJob{Message: mailer.Message{To: to, Subject: "subject", Body: "<p>body</p>"}}
}

func TestNewMemoryQueue(t *testing.T) {
	q := NewMemoryQueue(10)

	assert.Equal(t, 10, q.Capacity())
	assert.Equal(t, 0, q.Len())
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("enqueues up to capacity", func(t *testing.T) {
		q := NewMemoryQueue(3)

		for i := 0; i < 3; i++ {
			assert.NoError(t, q.Enqueue(job("a@example.com")))
		}

		assert.Equal(t, 3, q.Len())
	})

	t.Run("returns error when queue is full", func(t *testing.T) {
		q := NewMemoryQueue(1)
		_ = q.Enqueue(job("a@example.com"))

		err := q.Enqueue(job("b@example.com"))

		assert.Equal(t, ErrQueueFull, err)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("returns error when queue is closed", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		assert.Equal(t, ErrQueueClosed, q.Enqueue(job("a@example.com")))
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("dequeues in FIFO order", func(t *testing.T) {
		q := NewMemoryQueue(10)
		_ = q.Enqueue(job("first@example.com"))
		_ = q.Enqueue(job("second@example.com"))

		first, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		second, err := q.Dequeue(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "first@example.com", first.Message.To)
		assert.Equal(t, "second@example.com", second.Message.To)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		q := NewMemoryQueue(10)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := q.Dequeue(ctx)

		assert.Equal(t, context.Canceled, err)
	})

	t.Run("returns deadline error on timeout", func(t *testing.T) {
		q := NewMemoryQueue(10)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := q.Dequeue(ctx)

		assert.Equal(t, context.DeadlineExceeded, err)
	})

	t.Run("unblocks when the queue closes", func(t *testing.T) {
		q := NewMemoryQueue(10)
		go func() {
			time.Sleep(50 * time.Millisecond)
			q.Close()
		}()

		_, err := q.Dequeue(context.Background())

		assert.Equal(t, ErrQueueClosed, err)
	})

	t.Run("drains jobs queued before close", func(t *testing.T) {
		q := NewMemoryQueue(10)
		_ = q.Enqueue(job("a@example.com"))
		q.Close()

		got, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", got.Message.To)

		_, err = q.Dequeue(context.Background())
		assert.Equal(t, ErrQueueClosed, err)
	})
}

func TestMemoryQueue_Close(t *testing.T) {
	q := NewMemoryQueue(10)

	q.Close()
	q.Close()

	assert.Equal(t, ErrQueueClosed, q.Enqueue(job("a@example.com")))
}

func TestMemoryQueue_Reset(t *testing.T) {
	q := NewMemoryQueue(5)
	_ = q.Enqueue(job("a@example.com"))
	q.Close()

	q.Reset()

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 5, q.Capacity())
	assert.NoError(t, q.Enqueue(job("b@example.com")))
}

func TestMemoryQueue_Concurrency(t *testing.T) {
	q := NewMemoryQueue(100)
	ctx := context.Background()
	jobCount := 50

	results := make(chan MailJob, jobCount)
	for i := 0; i < 5; i++ {
		go func() {
			for {
				j, err := q.Dequeue(ctx)
				if err != nil {
					return
				}
				results <- j
			}
		}()
	}

	for i := 0; i < jobCount; i++ {
		go func() { _ = q.Enqueue(job("a@example.com")) }()
	}

	received := 0
	timeout := time.After(2 * time.Second)
	for received < jobCount {
		select {
		case <-results:
			received++
		case <-timeout:
			t.Fatalf("Timed out waiting for jobs, received %d/%d", received, jobCount)
		}
	}

	q.Close()
	assert.Equal(t, jobCount, received)
}
