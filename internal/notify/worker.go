package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
)

// Worker consumes notification tasks
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewWorker creates a Worker delivering through senders
func NewWorker(redisCfg *config.RedisConfig, cfg *config.NotifyConfig, senders Senders, logger *zap.Logger) *Worker {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(redisOpt(redisCfg), asynq.Config{
		Concurrency: concurrency,
		Logger:      logger.Sugar(),
	})
	return &Worker{srv: srv, mux: NewServeMux(senders, logger)}
}

// NewServeMux routes both task types to a delivery handler
func NewServeMux(senders Senders, logger *zap.Logger) *asynq.ServeMux {
	h := &taskHandler{senders: senders, logger: logger}
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmail, h.handle)
	mux.HandleFunc(TypeSMS, h.handle)
	return mux
}

// Run blocks until SIGTERM/SIGINT
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

type taskHandler struct {
	senders Senders
	logger  *zap.Logger
}

func (h *taskHandler) handle(ctx context.Context, t *asynq.Task) error {
	var msg Message
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}

	err := h.senders.Deliver(ctx, msg)
	if errors.Is(err, ErrChannelDisabled) {
		h.logger.Debug("notification channel disabled, task dropped", zap.String("type", t.Type()))
		return nil
	}
	if err != nil {
		h.logger.Warn("notification delivery failed, will retry",
			zap.String("type", t.Type()),
			zap.String("to", msg.To),
			zap.Error(err),
		)
		return err
	}
	h.logger.Info("notification delivered", zap.String("type", t.Type()), zap.String("to", msg.To))
	return nil
}
