package notify

import (
	"context"
	"sync"
	"time"

	"farm-visit/internal/data/entity"

	"go.uber.org/zap"
)

type asyncNotifier struct {
	dispatcher Dispatcher
	timeout    time.Duration
	log        *zap.Logger
	now        func() time.Time

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsync dispatches every event on its own goroutine. Failures are logged and dropped.
func NewAsync(dispatcher Dispatcher, timeout time.Duration, log *zap.Logger) Notifier {
	return &asyncNotifier{
		dispatcher: dispatcher,
		timeout:    timeout,
		log:        log.With(zap.String("component", "notifier")),
		now:        time.Now,
	}
}

func (n *asyncNotifier) Publish(ctx context.Context, event Event, req *entity.VisitRequest) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.log.Warn("Notifier closed, dropping event",
			zap.String("event", string(event)),
			zap.String("request_id", req.ID.String()),
		)
		return
	}

	msg := NewMessage(event, req, n.now())
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		// the request context ends with the HTTP response
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()

		if err := n.dispatcher.Dispatch(dctx, msg); err != nil {
			n.log.Error("Failed to dispatch visit request event",
				zap.Error(err),
				zap.String("event", string(msg.Event)),
				zap.String("request_id", msg.RequestID),
			)
		}
	}()
}

// Close waits for in-flight events, then closes the dispatcher.
func (n *asyncNotifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	n.wg.Wait()
	return n.dispatcher.Close()
}
