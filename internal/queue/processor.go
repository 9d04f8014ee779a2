package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"coursehub/internal/mailer"
)

const (
	// MaxRetries is the number of delivery attempts per job.
	MaxRetries = 3
	// RetryDelay is the base delay between attempts, doubled each retry.
	RetryDelay = 5 * time.Second
)

// DeliveryRecorder observes the final outcome of each job.
type DeliveryRecorder interface {
	MailDelivery(success bool)
}

// Processor delivers queued mail with a fixed pool of workers.
type Processor struct {
	queue        *MemoryQueue
	sender       mailer.Sender
	recorder     DeliveryRecorder
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a processor. recorder may be nil.
func NewProcessor(queue *MemoryQueue, sender mailer.Sender, recorder DeliveryRecorder, workerCount int) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		queue:       queue,
		sender:      sender,
		recorder:    recorder,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Mail processor started with %d workers", p.workerCount)
}

// Stop closes the queue and waits for workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Mail processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				log.Printf("Mail worker %d shutting down", id)
				return
			}
			continue
		}
		p.deliver(ctx, job)
	}
}

func (p *Processor) deliver(ctx context.Context, job MailJob) {
	if err := p.sender.Send(ctx, job.Message); err != nil {
		log.Printf("Mail to %s failed (attempt %d): %v", job.Message.To, job.RetryCount+1, err)
		p.handleFailure(job)
		return
	}
	p.record(true)
}

func (p *Processor) handleFailure(job MailJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		log.Printf("Giving up on mail to %s after %d attempts", job.Message.To, job.RetryCount)
		p.record(false)
		return
	}

	delay := p.backoff(job.RetryCount)

	// Retries wait on shutdownCh rather than ctx so pending jobs are
	// abandoned as soon as Stop is called.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay, dropping mail to %s", job.Message.To)
			p.record(false)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue mail to %s: %v", job.Message.To, err)
				p.record(false)
			}
		}
	}()
}

// backoff returns retryDelay * 2^(attempt-1).
func (p *Processor) backoff(attempt int) time.Duration {
	return p.retryDelay * time.Duration(1<<uint(attempt-1))
}

func (p *Processor) record(success bool) {
	if p.recorder != nil {
		p.recorder.MailDelivery(success)
	}
}

// Notifier enqueues mail without ever failing the caller.
type Notifier struct {
	queue Queue
}

// NewNotifier wraps q.
func NewNotifier(q Queue) *Notifier {
	return &Notifier{queue: q}
}

// Notify enqueues msg, logging and dropping it when the queue rejects it.
func (n *Notifier) Notify(msg mailer.Message) {
	if n == nil || n.queue == nil {
		return
	}
	if err := n.queue.Enqueue(MailJob{Message: msg}); err != nil {
		log.Printf("Dropping mail to %s: %v", msg.To, err)
	}
}
