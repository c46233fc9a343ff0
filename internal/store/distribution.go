package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrAlreadyApplied is returned when a distribution's ledger entries already
// exist for the source purchase. The retry path runs at least once, so a
// replayed commit must land as a no-op.
var ErrAlreadyApplied = errors.New("distribution already applied")

// CommissionPayout is one queued level of a distribution: a balance credit
// for an ancestor plus its COMMISSION ledger entry.
type CommissionPayout struct {
	RecipientID uuid.UUID
	Amount      float64
	Level       int
}

const sqlCreditBalance = `
UPDATE members
SET balance = balance + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlInsertCommissionEntry = `
INSERT INTO ledger_entries (recipient_id, kind, amount, level, source_ref)
VALUES ($1, 'COMMISSION', $2, $3, $4)
`

const sqlCommissionEntriesExist = `
SELECT EXISTS (
	SELECT 1 FROM ledger_entries
	WHERE source_ref = $1 AND kind = 'COMMISSION'
)
`

// ApplyCommissionPayouts commits every queued payout of one distribution in
// a single transaction: either all computed levels are applied, or none.
// Balance credits go through SQL-side increments so that concurrent
// distributions targeting overlapping ancestors stay correct without locks.
//
// Returns ErrAlreadyApplied without writing when COMMISSION entries for the
// source purchase already exist, so a redelivered retry never pays a level
// twice.
func (s *Store) ApplyCommissionPayouts(ctx context.Context, sourceRef uuid.UUID, payouts []CommissionPayout) error {
	if len(payouts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var applied bool
	if err := tx.GetContext(ctx, &applied, sqlCommissionEntriesExist, sourceRef); err != nil {
		s.logger.Error(ctx, "failed to check for existing distribution", err)
		return fmt.Errorf("failed to check for existing distribution: %w", err)
	}
	if applied {
		return ErrAlreadyApplied
	}

	for _, payout := range payouts {
		if _, err := tx.ExecContext(ctx, sqlCreditBalance, payout.RecipientID, payout.Amount); err != nil {
			s.logger.Error(ctx, "failed to credit balance", err)
			return fmt.Errorf("failed to credit balance: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlInsertCommissionEntry,
			payout.RecipientID, payout.Amount, payout.Level, sourceRef); err != nil {
			s.logger.Error(ctx, "failed to insert commission ledger entry", err)
			return fmt.Errorf("failed to insert commission ledger entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit distribution", err)
		return fmt.Errorf("failed to commit distribution: %w", err)
	}
	return nil
}
