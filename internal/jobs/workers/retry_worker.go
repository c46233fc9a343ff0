package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	commission "upline-server/internal/commission/processor"
	"upline-server/internal/jobs"
	"upline-server/internal/observability"
	teamrank "upline-server/internal/teamrank/processor"

	"github.com/hibiken/asynq"
)

// RetryWorker reprocesses engine runs that failed at the commit stage.
type RetryWorker struct {
	commission commission.CommissionProcessor
	teamrank   teamrank.TeamRankProcessor
	jobClient  *jobs.Client
	logger     *observability.Logger
}

// NewRetryWorker creates a new retry worker
func NewRetryWorker(
	commission commission.CommissionProcessor,
	teamrank teamrank.TeamRankProcessor,
	jobClient *jobs.Client,
	logger *observability.Logger,
) *RetryWorker {
	return &RetryWorker{
		commission: commission,
		teamrank:   teamrank,
		jobClient:  jobClient,
		logger:     logger,
	}
}

// ProcessCommissionRetryTask re-runs a distribution whose transaction failed.
// The purchase is already claimed, so the run skips the claim and recomputes
// the payouts; the all-or-nothing commit makes the replay safe.
func (w *RetryWorker) ProcessCommissionRetryTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.CommissionRetryJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal commission retry payload", err)
		return fmt.Errorf("failed to unmarshal commission retry payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "purchase_id", Value: payload.PurchaseID.String()},
	)

	_, err := w.commission.Distribute(ctx, commission.DistributeRequest{
		PurchaseID: payload.PurchaseID,
		Resume:     true,
	})
	if err != nil {
		if errors.Is(err, commission.ErrPurchaseNotFound) || errors.Is(err, commission.ErrBuyerNotFound) {
			w.logger.Error(ctx, "commission retry hit a fatal error, dropping task", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "commission retry failed, will retry", err)
		return err
	}

	w.logger.Info(ctx, "commission retry completed")
	return nil
}

// ProcessPropagationRetryTask resumes a propagation walk at the failed
// ancestor. If the resumed walk fails again further up, a fresh task with
// the new resume point is enqueued so already committed ancestors are never
// replayed.
func (w *RetryWorker) ProcessPropagationRetryTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.PropagationRetryJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal propagation retry payload", err)
		return fmt.Errorf("failed to unmarshal propagation retry payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "member_id", Value: payload.MemberID.String()},
	)

	_, err := w.teamrank.Propagate(ctx, teamrank.PropagateRequest{
		MemberID:   payload.MemberID,
		ResumeFrom: payload.ResumeFrom,
	})
	if err != nil {
		if errors.Is(err, teamrank.ErrMemberNotFound) {
			w.logger.Error(ctx, "propagation retry hit a fatal error, dropping task", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		var commitErr *teamrank.CommitError
		if errors.As(err, &commitErr) {
			advanced := payload.ResumeFrom == nil || *payload.ResumeFrom != commitErr.AncestorID
			if advanced {
				// The walk committed further ancestors before failing again.
				// Re-anchor the retry so those are never replayed.
				if enqueueErr := w.jobClient.EnqueuePropagationRetryJob(ctx, jobs.PropagationRetryJobPayload{
					MemberID:   payload.MemberID,
					ResumeFrom: &commitErr.AncestorID,
				}); enqueueErr != nil {
					w.logger.Error(ctx, "failed to enqueue follow-up propagation retry", enqueueErr)
					return err
				}
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
		}

		w.logger.Error(ctx, "propagation retry failed, will retry", err)
		return err
	}

	w.logger.Info(ctx, "propagation retry completed")
	return nil
}
