// Package job runs background work on asynq, a Redis-backed task queue.
//
// Registration enqueues tasks through JobService.Client; the embedded
// asynq.Server pulls them from Redis and dispatches them to handlers.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/lib/email"
	"github.com/rs/zerolog"
)

// welcomeSender delivers welcome emails. *email.Client implements it.
type welcomeSender interface {
	SendWelcomeEmail(to, name, userType string) error
}

// enqueuer is the producer side of asynq.Client.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type JobService struct {
	Client enqueuer
	server *asynq.Server
	logger *zerolog.Logger
	emails welcomeSender
}

// NewJobService builds the asynq client and server for cfg.Redis.Address.
// Call Start to begin processing.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, emailClient *email.Client) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
		emails: emailClient,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Start launches the worker pool in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(j.mux()); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}
	return nil
}

// Stop waits for in-flight tasks and closes the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")

	if j.server != nil {
		j.server.Shutdown()
	}
	if j.Client != nil {
		if err := j.Client.Close(); err != nil {
			j.logger.Warn().Err(err).Msg("closing job client")
		}
	}
}

// EnqueueWelcomeEmail schedules the welcome email for a new account.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, to, name, userType string) error {
	task, err := NewWelcomeEmailTask(to, name, userType)
	if err != nil {
		return fmt.Errorf("building welcome task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing welcome task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("welcome email enqueued")

	return nil
}
