package processor

import (
	"context"
	"errors"
	"fmt"

	"upline-server/internal/observability"
	"upline-server/internal/store"

	"github.com/google/uuid"
)

// MaxLevels is how far up the sponsor chain commissions reach.
const MaxLevels = 15

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrBuyerNotFound    = errors.New("buyer not found")
	ErrCommitFailed     = errors.New("failed to commit distribution")
)

// rateForLevel returns the commission rate for a chain level. Levels are
// 1-based: the buyer's direct sponsor is level 1.
func rateForLevel(level int) float64 {
	if level <= 5 {
		return 0.002
	}
	return 0.001
}

type CommissionProcessor struct {
	store  CommissionStore
	board  EarningsBoard
	logger *observability.Logger
}

// New creates a CommissionProcessor. board may be nil when no leaderboard is
// configured.
func New(store CommissionStore, board EarningsBoard, logger *observability.Logger) CommissionProcessor {
	return CommissionProcessor{
		store:  store,
		board:  board,
		logger: logger,
	}
}

// DistributeRequest identifies a verified purchase to distribute. Resume is
// set on the retry and redrive paths after a commit failure: the purchase is
// already claimed, so the claim step is skipped and the payouts are
// recomputed. The commit no-ops when the payouts already landed, so a
// redelivered retry never pays twice.
type DistributeRequest struct {
	PurchaseID uuid.UUID
	Resume     bool
}

// DistributeResult reports a completed distribution. Claimed is false when
// the purchase was already distributed and the run was a no-op.
type DistributeResult struct {
	Claimed          bool
	LevelsPaid       int
	TotalDistributed float64
	Payouts          []store.CommissionPayout
}

// Distribute pays commissions for a verified purchase up the buyer's sponsor
// chain, at most MaxLevels deep, and commits every level in one transaction.
// Claiming the purchase first makes concurrent deliveries of the same event
// resolve to exactly one distribution.
//
// A missing purchase or buyer is fatal and leaves the purchase unclaimed.
// An ancestor that cannot be resolved truncates the chain at that level,
// paying everyone below it.
func (p CommissionProcessor) Distribute(ctx context.Context, req DistributeRequest) (DistributeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "purchase_id", Value: req.PurchaseID.String()},
	)

	purchase, err := p.store.GetPurchaseByID(ctx, req.PurchaseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DistributeResult{}, ErrPurchaseNotFound
		}
		p.logger.Error(ctx, "failed to load purchase", err)
		return DistributeResult{}, err
	}

	if !req.Resume && purchase.Status == store.PurchaseStatusCompleted {
		p.logger.Info(ctx, "purchase already distributed, skipping")
		return DistributeResult{Claimed: false}, nil
	}

	buyer, err := p.store.GetMemberByID(ctx, purchase.BuyerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DistributeResult{}, ErrBuyerNotFound
		}
		p.logger.Error(ctx, "failed to load buyer", err)
		return DistributeResult{}, err
	}

	if !req.Resume {
		claimed, err := p.store.ClaimPurchase(ctx, req.PurchaseID)
		if err != nil {
			p.logger.Error(ctx, "failed to claim purchase", err)
			return DistributeResult{}, err
		}
		if !claimed {
			p.logger.Info(ctx, "purchase already distributed, skipping")
			return DistributeResult{Claimed: false}, nil
		}
	}

	payouts := p.computePayouts(ctx, buyer, purchase.CreditedAmount)

	if err := p.store.ApplyCommissionPayouts(ctx, purchase.ID, payouts); err != nil {
		if errors.Is(err, store.ErrAlreadyApplied) {
			p.logger.Info(ctx, "distribution already committed, skipping")
			return DistributeResult{Claimed: false}, nil
		}
		p.logger.Error(ctx, "failed to commit distribution", err)
		return DistributeResult{}, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	result := DistributeResult{Claimed: true, LevelsPaid: len(payouts), Payouts: payouts}
	for _, payout := range payouts {
		result.TotalDistributed += payout.Amount
	}

	p.bumpLeaderboard(ctx, payouts)

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "levels_paid", Value: result.LevelsPaid},
		observability.Field{Key: "total_distributed", Value: result.TotalDistributed},
	), "commission distribution completed")
	return result, nil
}

// computePayouts walks the buyer's sponsor chain and queues one payout per
// reachable level. The walk stops at the root, at MaxLevels, at an ancestor
// that cannot be loaded, or when a sponsor cycle would revisit a member.
// Truncation never fails the run: the purchase is claimed by the time the
// walk starts, and an error here would strand it claimed but unpaid.
func (p CommissionProcessor) computePayouts(ctx context.Context, buyer store.Member, creditedAmount float64) []store.CommissionPayout {
	var payouts []store.CommissionPayout
	visited := map[uuid.UUID]bool{buyer.ID: true}

	current := buyer.SponsorID
	for level := 1; current != nil && level <= MaxLevels; level++ {
		ancestorID := *current
		if visited[ancestorID] {
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "ancestor_id", Value: ancestorID.String()},
			), "sponsor cycle detected, stopping walk")
			break
		}
		visited[ancestorID] = true

		ancestor, err := p.store.GetMemberByID(ctx, ancestorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Warn(observability.WithFields(ctx,
					observability.Field{Key: "ancestor_id", Value: ancestorID.String()},
				), "sponsor chain broken, stopping walk")
				break
			}
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "ancestor_id", Value: ancestorID.String()},
				observability.Field{Key: "error", Value: err.Error()},
			), "failed to load ancestor, truncating walk")
			break
		}

		payouts = append(payouts, store.CommissionPayout{
			RecipientID: ancestor.ID,
			Amount:      creditedAmount * rateForLevel(level),
			Level:       level,
		})
		current = ancestor.SponsorID
	}

	return payouts
}

// bumpLeaderboard is best effort: a leaderboard failure never fails a
// committed distribution.
func (p CommissionProcessor) bumpLeaderboard(ctx context.Context, payouts []store.CommissionPayout) {
	if p.board == nil {
		return
	}
	for _, payout := range payouts {
		if err := p.board.IncrementEarnings(ctx, payout.RecipientID, payout.Amount); err != nil {
			p.logger.Warn(ctx, "failed to update earnings leaderboard")
			return
		}
	}
}
