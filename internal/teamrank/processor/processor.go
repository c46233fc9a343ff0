package processor

import (
	"context"
	"errors"
	"fmt"

	"upline-server/internal/observability"
	"upline-server/internal/store"
	"upline-server/internal/teamrank"

	"github.com/google/uuid"
)

// PropagationEngine is the claim namespace for registration events.
const PropagationEngine = "team_propagation"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrCommitFailed   = errors.New("failed to commit propagation step")
)

// CommitError reports which ancestor's transaction failed so a retry can
// resume the walk there instead of replaying already committed increments.
type CommitError struct {
	AncestorID uuid.UUID
	Err        error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("failed to commit propagation step at ancestor %s: %v", e.AncestorID, e.Err)
}

func (e *CommitError) Is(target error) bool {
	return target == ErrCommitFailed
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

type TeamRankProcessor struct {
	store  TeamStore
	logger *observability.Logger
}

func New(store TeamStore, logger *observability.Logger) TeamRankProcessor {
	return TeamRankProcessor{
		store:  store,
		logger: logger,
	}
}

// Evaluate implements store.RankEvaluator over the configured ladders.
func (p TeamRankProcessor) Evaluate(track store.Track, currentRank string, updatedCount int) (store.RankAward, bool) {
	tier, ok := teamrank.EvaluateTier(teamrank.TiersForTrack(track), currentRank, updatedCount)
	if !ok {
		return store.RankAward{}, false
	}
	return store.RankAward{
		Track:        track,
		TierName:     tier.Name,
		RewardAmount: tier.Reward,
	}, true
}

// PropagateRequest identifies a registration to propagate. ResumeFrom is set
// only on the retry path: it skips the event claim and starts the walk at the
// ancestor whose transaction previously failed.
type PropagateRequest struct {
	MemberID   uuid.UUID
	ResumeFrom *uuid.UUID
}

// RankChange is one ancestor's awards during a propagation run.
type RankChange struct {
	AncestorID uuid.UUID
	Awards     []store.RankAward
}

// PropagateResult reports a completed propagation run. Claimed is false when
// the registration was already processed and the run was a no-op.
type PropagateResult struct {
	Claimed          bool
	AncestorsUpdated int
	RankChanges      []RankChange
}

// Propagate walks the sponsor chain of a newly registered member up to the
// root, committing each ancestor's counter increments and any rank awards in
// its own transaction. Completed ancestors stay committed even when a later
// step fails: the returned CommitError carries the resume point.
//
// A missing member is fatal (ErrMemberNotFound). A missing ancestor truncates
// the walk at that point, keeping everything below it.
func (p TeamRankProcessor) Propagate(ctx context.Context, req PropagateRequest) (PropagateResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "member_id", Value: req.MemberID.String()},
	)

	member, err := p.store.GetMemberByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PropagateResult{}, ErrMemberNotFound
		}
		p.logger.Error(ctx, "failed to load registered member", err)
		return PropagateResult{}, err
	}

	start := member.SponsorID
	if req.ResumeFrom == nil {
		claimed, err := p.store.ClaimEvent(ctx, PropagationEngine, member.ID)
		if err != nil {
			p.logger.Error(ctx, "failed to claim registration event", err)
			return PropagateResult{}, err
		}
		if !claimed {
			p.logger.Info(ctx, "registration already propagated, skipping")
			return PropagateResult{Claimed: false}, nil
		}
	} else {
		start = req.ResumeFrom
	}

	result := PropagateResult{Claimed: true}
	visited := map[uuid.UUID]bool{member.ID: true}

	current := start
	for current != nil {
		ancestorID := *current
		if visited[ancestorID] {
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "ancestor_id", Value: ancestorID.String()},
			), "sponsor cycle detected, stopping walk")
			break
		}
		visited[ancestorID] = true

		step, err := p.store.ApplyTeamPropagation(ctx, ancestorID, member.IsPaid, member.ID, p)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Warn(observability.WithFields(ctx,
					observability.Field{Key: "ancestor_id", Value: ancestorID.String()},
				), "sponsor chain broken, stopping walk")
				break
			}
			p.logger.Error(ctx, "failed to commit propagation step", err)
			return result, &CommitError{AncestorID: ancestorID, Err: err}
		}

		result.AncestorsUpdated++
		if len(step.Awards) > 0 {
			result.RankChanges = append(result.RankChanges, RankChange{
				AncestorID: ancestorID,
				Awards:     step.Awards,
			})
		}
		current = step.SponsorID
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "ancestors_updated", Value: result.AncestorsUpdated},
		observability.Field{Key: "rank_changes", Value: len(result.RankChanges)},
	), "team propagation completed")
	return result, nil
}

// ReleaseClaim removes a registration's claim so the event can be redriven.
// Exposed for the operator path after exhausted retries.
func (p TeamRankProcessor) ReleaseClaim(ctx context.Context, memberID uuid.UUID) error {
	return p.store.ReleaseEventClaim(ctx, PropagationEngine, memberID)
}
