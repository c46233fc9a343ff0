package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlClaimEvent = `
INSERT INTO event_claims (engine, event_ref)
VALUES ($1, $2)
ON CONFLICT (engine, event_ref) DO NOTHING
`

// ClaimEvent records that an engine has started processing an event. Returns
// false when a claim for the same (engine, event_ref) pair already exists,
// which makes redelivered events resolve to exactly one processing run.
func (s *Store) ClaimEvent(ctx context.Context, engine string, eventRef uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimEvent, engine, eventRef)
	if err != nil {
		s.logger.Error(ctx, "failed to claim event", err)
		return false, fmt.Errorf("failed to claim event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

const sqlReleaseEventClaim = `
DELETE FROM event_claims
WHERE engine = $1 AND event_ref = $2
`

// ReleaseEventClaim removes a claim so a failed run can be redriven. Meant
// for the retry path after a commit failure, never for completed runs.
func (s *Store) ReleaseEventClaim(ctx context.Context, engine string, eventRef uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlReleaseEventClaim, engine, eventRef); err != nil {
		s.logger.Error(ctx, "failed to release event claim", err)
		return fmt.Errorf("failed to release event claim: %w", err)
	}
	return nil
}
