package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
)

// Task types consumed by the notification worker
const (
	TypeEmail = "notify:email"
	TypeSMS   = "notify:sms"
)

// QueueDispatcher enqueues messages as asynq tasks
type QueueDispatcher struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
	logger   *zap.Logger
}

// NewQueueDispatcher creates a QueueDispatcher on the configured Redis
func NewQueueDispatcher(redisCfg *config.RedisConfig, cfg *config.NotifyConfig, logger *zap.Logger) *QueueDispatcher {
	client := asynq.NewClient(redisOpt(redisCfg))
	return &QueueDispatcher{
		client:   client,
		maxRetry: cfg.MaxRetry,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewTask wraps msg in the task type of its channel
func NewTask(msg Message) (*asynq.Task, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	typ := TypeEmail
	if msg.Channel == ChannelSMS {
		typ = TypeSMS
	}
	return asynq.NewTask(typ, payload), nil
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, msgs ...Message) {
	for _, msg := range msgs {
		if msg.To == "" {
			continue
		}
		task, err := NewTask(msg)
		if err != nil {
			d.logger.Warn("encode notification task failed", zap.Error(err))
			continue
		}
		opts := []asynq.Option{asynq.MaxRetry(d.maxRetry)}
		if d.timeout > 0 {
			opts = append(opts, asynq.Timeout(d.timeout))
		}
		info, err := d.client.EnqueueContext(ctx, task, opts...)
		if err != nil {
			d.logger.Warn("enqueue notification failed",
				zap.String("type", task.Type()),
				zap.String("to", msg.To),
				zap.Error(err),
			)
			continue
		}
		d.logger.Debug("notification enqueued", zap.String("task_id", info.ID), zap.String("type", info.Type))
	}
}

// Close closes the Redis connection of the client
func (d *QueueDispatcher) Close() error {
	return d.client.Close()
}
