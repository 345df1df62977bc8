package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DirectDispatcher sends each message from its own goroutine, detached from the
// caller's cancellation and bounded by timeout.
type DirectDispatcher struct {
	senders Senders
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewDirectDispatcher creates a DirectDispatcher
func NewDirectDispatcher(senders Senders, timeout time.Duration, logger *zap.Logger) *DirectDispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DirectDispatcher{senders: senders, timeout: timeout, logger: logger}
}

func (d *DirectDispatcher) Dispatch(ctx context.Context, msgs ...Message) {
	base := context.WithoutCancel(ctx)
	for _, msg := range msgs {
		if msg.To == "" {
			continue
		}
		d.wg.Add(1)
		go func(msg Message) {
			defer d.wg.Done()
			sendCtx, cancel := context.WithTimeout(base, d.timeout)
			defer cancel()
			d.deliver(sendCtx, msg)
		}(msg)
	}
}

func (d *DirectDispatcher) deliver(ctx context.Context, msg Message) {
	err := d.senders.Deliver(ctx, msg)
	switch {
	case err == nil:
		d.logger.Debug("notification sent", zap.String("channel", string(msg.Channel)), zap.String("to", msg.To))
	case errors.Is(err, ErrChannelDisabled):
		d.logger.Debug("notification channel disabled, message dropped", zap.String("channel", string(msg.Channel)))
	default:
		d.logger.Warn("notification failed",
			zap.String("channel", string(msg.Channel)),
			zap.String("to", msg.To),
			zap.Error(err),
		)
	}
}

// Close waits for in-flight sends
func (d *DirectDispatcher) Close() error {
	d.wg.Wait()
	return nil
}
