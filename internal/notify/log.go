package notify

import (
	"context"

	"go.uber.org/zap"
)

type logDispatcher struct {
	log *zap.Logger
}

// NewLogDispatcher writes events to the application log. Used when no broker is configured.
func NewLogDispatcher(log *zap.Logger) Dispatcher {
	return &logDispatcher{log: log.With(zap.String("dispatcher", "log"))}
}

func (d *logDispatcher) Dispatch(_ context.Context, msg Message) error {
	d.log.Info("Visit request event",
		zap.String("event", string(msg.Event)),
		zap.String("request_id", msg.RequestID),
		zap.String("seller_id", msg.SellerID),
		zap.String("status", string(msg.Status)),
		zap.Int("visitors", msg.NumberOfVisitors),
	)
	return nil
}

func (d *logDispatcher) Close() error {
	return nil
}
