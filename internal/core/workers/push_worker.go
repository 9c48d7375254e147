package workers

import (
	"context"
	"log"
)

// Notifier delivers one push notification to every device of a user.
type Notifier interface {
	SendToUser(ctx context.Context, userEmail, title, body string, data map[string]string) error
}

type PushJob struct {
	UserEmail string
	Title     string
	Body      string
	Data      map[string]string
}

// PushWorker delivers notifications off the request path. Jobs are
// dropped when the queue is full; a missed push is not worth blocking
// a request for.
type PushWorker struct {
	notifier Notifier
	jobs     chan PushJob
}

func NewPushWorker(notifier Notifier) *PushWorker {
	return &PushWorker{
		notifier: notifier,
		jobs:     make(chan PushJob, 100),
	}
}

func (w *PushWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Push Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Push Worker shutting down...")
				return
			}
		}
	}()
}

func (w *PushWorker) Enqueue(job PushJob) {
	select {
	case w.jobs <- job:
	default:
		log.Printf("Push Worker queue full! Dropping notification for %s", job.UserEmail)
	}
}

func (w *PushWorker) processJob(ctx context.Context, job PushJob) {
	if err := w.notifier.SendToUser(ctx, job.UserEmail, job.Title, job.Body, job.Data); err != nil {
		log.Printf("Worker failed to push to %s: %v", job.UserEmail, err)
	}
}
