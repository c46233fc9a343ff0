package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetLedgerEntriesByRecipient = `
SELECT id, recipient_id, kind, amount, level, reward_name, track, source_ref, created_at
FROM ledger_entries
WHERE recipient_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetLedgerEntriesByRecipient retrieves ledger entries credited to a member
func (s *Store) GetLedgerEntriesByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetLedgerEntriesByRecipient, recipientID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get ledger entries by recipient", err)
		return nil, fmt.Errorf("failed to get ledger entries by recipient: %w", err)
	}
	return entries, nil
}

const sqlGetLedgerEntriesBySource = `
SELECT id, recipient_id, kind, amount, level, reward_name, track, source_ref, created_at
FROM ledger_entries
WHERE source_ref = $1
ORDER BY level ASC NULLS LAST, created_at ASC
`

// GetLedgerEntriesBySource retrieves all ledger entries written for one
// triggering event (a purchase or a registration)
func (s *Store) GetLedgerEntriesBySource(ctx context.Context, sourceRef uuid.UUID) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetLedgerEntriesBySource, sourceRef)
	if err != nil {
		s.logger.Error(ctx, "failed to get ledger entries by source", err)
		return nil, fmt.Errorf("failed to get ledger entries by source: %w", err)
	}
	return entries, nil
}

const sqlCountLedgerEntriesByRecipient = `
SELECT COUNT(*)
FROM ledger_entries
WHERE recipient_id = $1
`

// CountLedgerEntriesByRecipient counts ledger entries credited to a member
func (s *Store) CountLedgerEntriesByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountLedgerEntriesByRecipient, recipientID)
	if err != nil {
		s.logger.Error(ctx, "failed to count ledger entries", err)
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return count, nil
}
