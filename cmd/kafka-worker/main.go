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
	"upline-server/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting event consumer server...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	logger.Info(ctx, fmt.Sprintf(`Event consumer configuration:
  - Commission workers: %d
  - Team workers: %d
  - Kafka brokers: %s
  - Kafka topic: %s
  - Consumer group: %s`,
		cfg.Workers.CommissionWorkers, cfg.Workers.TeamWorkers,
		cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start the commission distributor consumer
	go func() {
		logger.Info(ctx, "Starting commission event consumer...")
		if err := deps.CommissionConsumer.Start(ctx); err != nil && err != context.Canceled {
			logger.Error(ctx, "commission consumer error", err)
			cancel()
		}
	}()

	// Start the team propagation consumer
	go func() {
		logger.Info(ctx, "Starting team event consumer...")
		if err := deps.TeamConsumer.Start(ctx); err != nil && err != context.Canceled {
			logger.Error(ctx, "team consumer error", err)
			cancel()
		}
	}()

	logger.Info(ctx, "Event consumer server started successfully")

	// Wait for shutdown signal or consumer failure
	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumers...")
	case <-ctx.Done():
		logger.Info(ctx, "Consumer stopped, shutting down...")
	}
	cancel()

	if err := deps.CommissionConsumer.Stop(); err != nil {
		logger.Error(ctx, "error stopping commission consumer", err)
	}
	if err := deps.TeamConsumer.Stop(); err != nil {
		logger.Error(ctx, "error stopping team consumer", err)
	}

	logger.Info(ctx, "Event consumer server stopped")
}
