// Package cron hosts the background asynq worker that drains the
// notification outbox.
package cron

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"thecut/config"
	"thecut/services/notification"
	"thecut/services/tasks"
)

// NewNotificationWorker builds the asynq server consuming reservation
// events. The caller runs it in the background and shuts it down with the
// process.
func NewNotificationWorker(cfg config.Config, notifier *notification.DefaultReservationNotifier, logger *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationCreated, notifier.HandleReservationCreatedTask)

	logger.Info("notification worker configured",
		zap.String("redis", cfg.RedisAddr),
		zap.Int("db", cfg.RedisQueueDB))
	return srv, mux
}

// NewEventClient builds the asynq producer the wizard enqueues through.
func NewEventClient(cfg config.Config) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	})
}
