package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreatePurchaseParams represents parameters for creating a purchase
type CreatePurchaseParams struct {
	BuyerID        uuid.UUID
	CreditedAmount float64
}

const sqlCreatePurchase = `
INSERT INTO purchases (buyer_id, credited_amount, status)
VALUES ($1, $2, 'pending_verification')
RETURNING id, buyer_id, credited_amount, status, completed_at, created_at
`

// CreatePurchase creates a purchase in pending_verification
func (s *Store) CreatePurchase(ctx context.Context, params CreatePurchaseParams) (Purchase, error) {
	var purchase Purchase
	err := s.db.GetContext(ctx, &purchase, sqlCreatePurchase, params.BuyerID, params.CreditedAmount)
	if err != nil {
		s.logger.Error(ctx, "failed to create purchase", err)
		return Purchase{}, fmt.Errorf("failed to create purchase: %w", err)
	}
	return purchase, nil
}

const sqlGetPurchaseByID = `
SELECT id, buyer_id, credited_amount, status, completed_at, created_at
FROM purchases
WHERE id = $1
`

// GetPurchaseByID retrieves a purchase by ID
func (s *Store) GetPurchaseByID(ctx context.Context, purchaseID uuid.UUID) (Purchase, error) {
	var purchase Purchase
	err := s.db.GetContext(ctx, &purchase, sqlGetPurchaseByID, purchaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Purchase{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get purchase by id", err)
		return Purchase{}, fmt.Errorf("failed to get purchase by id: %w", err)
	}
	return purchase, nil
}

const sqlClaimPurchase = `
UPDATE purchases
SET status = 'completed',
    completed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending_verification'
`

// ClaimPurchase transitions a purchase pending_verification → completed.
// Returns false when the purchase was already claimed, which lets concurrent
// invocations for the same purchase resolve to exactly one winner.
func (s *Store) ClaimPurchase(ctx context.Context, purchaseID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimPurchase, purchaseID)
	if err != nil {
		s.logger.Error(ctx, "failed to claim purchase", err)
		return false, fmt.Errorf("failed to claim purchase: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}
