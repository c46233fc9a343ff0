package consumers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"upline-server/internal/clients/kafka"
	"upline-server/internal/events"
	"upline-server/internal/jobs"
	"upline-server/internal/observability"
	teamrank "upline-server/internal/teamrank/processor"

	"github.com/google/uuid"
)

// TeamConsumer handles consuming member.registered events and running the
// team propagation and rank engine
type TeamConsumer struct {
	kafkaConsumer *kafka.Consumer
	processor     teamrank.TeamRankProcessor
	jobClient     *jobs.Client
	logger        *observability.Logger
	workerCount   int
}

// NewTeamConsumer creates a new TeamConsumer
func NewTeamConsumer(
	kafkaConsumer *kafka.Consumer,
	processor teamrank.TeamRankProcessor,
	jobClient *jobs.Client,
	logger *observability.Logger,
	workerCount int,
) *TeamConsumer {
	if workerCount == 0 {
		workerCount = 10
	}

	return &TeamConsumer{
		kafkaConsumer: kafkaConsumer,
		processor:     processor,
		jobClient:     jobClient,
		logger:        logger,
		workerCount:   workerCount,
	}
}

// Start starts consuming events from Kafka with multiple workers
func (c *TeamConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("Starting team consumer with %d workers", c.workerCount))

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
func (c *TeamConsumer) worker(ctx context.Context, workerID int, eventChan <-chan kafka.EventMessage) {
	workerCtx := observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})
	c.logger.Info(workerCtx, fmt.Sprintf("Team worker %d started", workerID))

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				c.logger.Info(workerCtx, fmt.Sprintf("Team worker %d stopping - channel closed", workerID))
				return
			}

			err := c.processEvent(workerCtx, event)
			if err != nil {
				c.logger.Error(workerCtx, fmt.Sprintf("Team worker %d failed to process event", workerID), err)
			}

		case <-ctx.Done():
			c.logger.Info(workerCtx, fmt.Sprintf("Team worker %d stopping - context cancelled", workerID))
			return
		}
	}
}

// processEvent runs the propagation engine for a single member.registered
// event. A mid-walk commit failure hands the resume point to the asynq retry
// queue; the committed prefix stays committed.
func (c *TeamConsumer) processEvent(ctx context.Context, event kafka.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	if event.Type != events.TypeMemberRegistered {
		return nil
	}

	rawID, ok := event.Data["member_id"].(string)
	if !ok {
		c.logger.Warn(ctx, "member.registered event missing member_id, dropping")
		return nil
	}
	memberID, err := uuid.Parse(rawID)
	if err != nil {
		c.logger.Warn(ctx, "member.registered event has malformed member_id, dropping")
		return nil
	}

	result, err := c.processor.Propagate(ctx, teamrank.PropagateRequest{MemberID: memberID})
	if err != nil {
		var commitErr *teamrank.CommitError
		if errors.As(err, &commitErr) {
			c.logger.Error(ctx, "propagation commit failed, enqueueing retry", err)
			return c.jobClient.EnqueuePropagationRetryJob(ctx, jobs.PropagationRetryJobPayload{
				MemberID:   memberID,
				ResumeFrom: &commitErr.AncestorID,
			})
		}
		if errors.Is(err, teamrank.ErrMemberNotFound) {
			c.logger.Error(ctx, "propagation hit a fatal error, dropping event", err)
			return nil
		}
		return err
	}

	if result.Claimed {
		c.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "ancestors_updated", Value: result.AncestorsUpdated},
		), "propagation processed")
	}
	return nil
}

// Stop stops the consumer
func (c *TeamConsumer) Stop() error {
	c.logger.Info(context.Background(), "Stopping team consumer")
	return c.kafkaConsumer.Close()
}
