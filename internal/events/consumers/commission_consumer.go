package consumers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"upline-server/internal/clients/kafka"
	commission "upline-server/internal/commission/processor"
	"upline-server/internal/events"
	"upline-server/internal/jobs"
	"upline-server/internal/observability"

	"github.com/google/uuid"
)

// CommissionConsumer handles consuming purchase.verified events and running
// the commission distributor
type CommissionConsumer struct {
	kafkaConsumer *kafka.Consumer
	processor     commission.CommissionProcessor
	jobClient     *jobs.Client
	logger        *observability.Logger
	workerCount   int
}

// NewCommissionConsumer creates a new CommissionConsumer
func NewCommissionConsumer(
	kafkaConsumer *kafka.Consumer,
	processor commission.CommissionProcessor,
	jobClient *jobs.Client,
	logger *observability.Logger,
	workerCount int,
) *CommissionConsumer {
	if workerCount == 0 {
		workerCount = 10
	}

	return &CommissionConsumer{
		kafkaConsumer: kafkaConsumer,
		processor:     processor,
		jobClient:     jobClient,
		logger:        logger,
		workerCount:   workerCount,
	}
}

// Start starts consuming events from Kafka with multiple workers
func (c *CommissionConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("Starting commission consumer with %d workers", c.workerCount))

	eventChan := make(chan kafka.EventMessage, 100)
	errorChan := make(chan error, 1)

	go func() {
		err := c.kafkaConsumer.ConsumeEvents(ctx, func(msgCtx context.Context, event kafka.EventMessage) error {
			select {
			case eventChan <- event:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errorChan <- err
		}
		close(eventChan)
	}()

	var wg sync.WaitGroup
	for i := 0; i < c.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			c.worker(ctx, workerID, eventChan)
		}(i)
	}

	go func() {
		wg.Wait()
		close(errorChan)
	}()

	select {
	case err := <-errorChan:
		if err != nil {
			c.logger.Error(ctx, "consumer error", err)
			return err
		}
	case <-ctx.Done():
		c.logger.Info(ctx, "Consumer context cancelled")
		return ctx.Err()
	}

	return nil
}

// worker processes events from the event channel
func (c *CommissionConsumer) worker(ctx context.Context, workerID int, eventChan <-chan kafka.EventMessage) {
	workerCtx := observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})
	c.logger.Info(workerCtx, fmt.Sprintf("Commission worker %d started", workerID))

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				c.logger.Info(workerCtx, fmt.Sprintf("Commission worker %d stopping - channel closed", workerID))
				return
			}

			err := c.processEvent(workerCtx, event)
			if err != nil {
				c.logger.Error(workerCtx, fmt.Sprintf("Commission worker %d failed to process event", workerID), err)
			}

		case <-ctx.Done():
			c.logger.Info(workerCtx, fmt.Sprintf("Commission worker %d stopping - context cancelled", workerID))
			return
		}
	}
}

// processEvent runs the distributor for a single purchase.verified event.
// Fatal engine errors are logged and dropped; a commit failure hands the
// purchase to the asynq retry queue.
func (c *CommissionConsumer) processEvent(ctx context.Context, event kafka.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	if event.Type != events.TypePurchaseVerified {
		return nil
	}

	rawID, ok := event.Data["purchase_id"].(string)
	if !ok {
		c.logger.Warn(ctx, "purchase.verified event missing purchase_id, dropping")
		return nil
	}
	purchaseID, err := uuid.Parse(rawID)
	if err != nil {
		c.logger.Warn(ctx, "purchase.verified event has malformed purchase_id, dropping")
		return nil
	}

	result, err := c.processor.Distribute(ctx, commission.DistributeRequest{PurchaseID: purchaseID})
	if err != nil {
		if errors.Is(err, commission.ErrCommitFailed) {
			c.logger.Error(ctx, "distribution commit failed, enqueueing retry", err)
			return c.jobClient.EnqueueCommissionRetryJob(ctx, jobs.CommissionRetryJobPayload{
				PurchaseID: purchaseID,
			})
		}
		if errors.Is(err, commission.ErrPurchaseNotFound) || errors.Is(err, commission.ErrBuyerNotFound) {
			c.logger.Error(ctx, "distribution hit a fatal error, dropping event", err)
			return nil
		}
		return err
	}

	if result.Claimed {
		c.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "levels_paid", Value: result.LevelsPaid},
		), "distribution processed")
	}
	return nil
}

// Stop stops the consumer
func (c *CommissionConsumer) Stop() error {
	c.logger.Info(context.Background(), "Stopping commission consumer")
	return c.kafkaConsumer.Close()
}
