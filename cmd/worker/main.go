package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"upline-server/internal/bootstrap"
	"upline-server/internal/config"
	"upline-server/internal/jobs"
	"upline-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting retry worker server...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	redisAddr := cfg.Redis.RedisAddr()

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 20,
			Queues: map[string]int{
				jobs.QueueHigh:   10,
				jobs.QueueMedium: 5,
				jobs.QueueLow:    2,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCommissionDistribute, deps.RetryWorker.ProcessCommissionRetryTask)
	mux.HandleFunc(jobs.TypeTeamPropagate, deps.RetryWorker.ProcessPropagationRetryTask)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Retry worker server started on Redis: %s", redisAddr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run retry worker server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down retry worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Retry worker server stopped")
}
