package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RankAward describes one tier award decided by the rank evaluator.
type RankAward struct {
	Track        Track
	TierName     string
	RewardAmount float64
}

// RankEvaluator decides whether an updated team count unlocks a higher tier
// on a track. Implementations must be pure: the store calls them mid
// transaction and expects no side effects.
type RankEvaluator interface {
	Evaluate(track Track, currentRank string, updatedCount int) (RankAward, bool)
}

// TeamPropagationResult reports the durably committed outcome for one
// ancestor: the updated counters, any awards, and the next hop of the walk.
type TeamPropagationResult struct {
	AncestorID    uuid.UUID
	SponsorID     *uuid.UUID
	TotalTeamSize int
	PaidTeamSize  int
	Awards        []RankAward
}

type propagatedCounters struct {
	ID            uuid.UUID  `db:"id"`
	SponsorID     *uuid.UUID `db:"sponsor_id"`
	TotalTeamSize int        `db:"total_team_size"`
	PaidTeamSize  int        `db:"paid_team_size"`
	FreeRank      string     `db:"free_rank"`
	PaidRank      string     `db:"paid_rank"`
}

const sqlIncrementTeamCounters = `
UPDATE members
SET total_team_size = total_team_size + 1,
    paid_team_size = paid_team_size + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, sponsor_id, total_team_size, paid_team_size, free_rank, paid_rank
`

const sqlAwardFreeRank = `
UPDATE members
SET free_rank = $2,
    balance = balance + $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlAwardPaidRank = `
UPDATE members
SET paid_rank = $2,
    balance = balance + $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlInsertRankRewardEntry = `
INSERT INTO ledger_entries (recipient_id, kind, amount, reward_name, track, source_ref)
VALUES ($1, 'RANK_REWARD', $2, $3, $4, $5)
`

// ApplyTeamPropagation commits one ancestor's share of a propagation run in
// a single transaction: the counter increments, and any rank award the
// evaluator derives from the returned counts (rank move, reward credit,
// RANK_REWARD ledger entry). Counter increments are SQL-side so concurrent
// runs through overlapping ancestors stay correct.
//
// Returns ErrNotFound when the ancestor does not exist, leaving no writes.
func (s *Store) ApplyTeamPropagation(ctx context.Context, ancestorID uuid.UUID, paidMember bool, sourceRef uuid.UUID, eval RankEvaluator) (TeamPropagationResult, error) {
	paidIncrement := 0
	if paidMember {
		paidIncrement = 1
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return TeamPropagationResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var counters propagatedCounters
	err = tx.GetContext(ctx, &counters, sqlIncrementTeamCounters, ancestorID, paidIncrement)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TeamPropagationResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to increment team counters", err)
		return TeamPropagationResult{}, fmt.Errorf("failed to increment team counters: %w", err)
	}

	result := TeamPropagationResult{
		AncestorID:    counters.ID,
		SponsorID:     counters.SponsorID,
		TotalTeamSize: counters.TotalTeamSize,
		PaidTeamSize:  counters.PaidTeamSize,
	}

	// Free track always evaluates against the total count; the paid track
	// only moves when the triggering member is paid.
	if award, ok := eval.Evaluate(TrackFree, counters.FreeRank, counters.TotalTeamSize); ok {
		if err := applyRankAward(ctx, tx, ancestorID, sourceRef, award); err != nil {
			s.logger.Error(ctx, "failed to apply free-track award", err)
			return TeamPropagationResult{}, err
		}
		result.Awards = append(result.Awards, award)
	}
	if paidMember {
		if award, ok := eval.Evaluate(TrackPaid, counters.PaidRank, counters.PaidTeamSize); ok {
			if err := applyRankAward(ctx, tx, ancestorID, sourceRef, award); err != nil {
				s.logger.Error(ctx, "failed to apply paid-track award", err)
				return TeamPropagationResult{}, err
			}
			result.Awards = append(result.Awards, award)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit team propagation", err)
		return TeamPropagationResult{}, fmt.Errorf("failed to commit team propagation: %w", err)
	}
	return result, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func applyRankAward(ctx context.Context, tx execer, memberID, sourceRef uuid.UUID, award RankAward) error {
	rankSQL := sqlAwardFreeRank
	if award.Track == TrackPaid {
		rankSQL = sqlAwardPaidRank
	}
	if _, err := tx.ExecContext(ctx, rankSQL, memberID, award.TierName, award.RewardAmount); err != nil {
		return fmt.Errorf("failed to set rank: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlInsertRankRewardEntry,
		memberID, award.RewardAmount, award.TierName, string(award.Track), sourceRef); err != nil {
		return fmt.Errorf("failed to insert rank reward ledger entry: %w", err)
	}
	return nil
}
