package jobs

import (
	"context"
	"fmt"

	"upline-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueCommissionRetryJob enqueues a commission distribution retry
func (c *Client) EnqueueCommissionRetryJob(ctx context.Context, payload CommissionRetryJobPayload) error {
	task, err := NewCommissionRetryTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create commission retry task", err)
		return fmt.Errorf("failed to create commission retry task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue commission retry task", err)
		return fmt.Errorf("failed to enqueue commission retry task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued commission retry task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueuePropagationRetryJob enqueues a team propagation retry
func (c *Client) EnqueuePropagationRetryJob(ctx context.Context, payload PropagationRetryJobPayload) error {
	task, err := NewPropagationRetryTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create propagation retry task", err)
		return fmt.Errorf("failed to create propagation retry task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue propagation retry task", err)
		return fmt.Errorf("failed to enqueue propagation retry task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued propagation retry task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
