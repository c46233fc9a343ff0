package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"upline-server/internal/store"

	"github.com/google/uuid"
)

// CommissionStore defines the database operations required by CommissionProcessor
type CommissionStore interface {
	GetPurchaseByID(ctx context.Context, purchaseID uuid.UUID) (store.Purchase, error)
	ClaimPurchase(ctx context.Context, purchaseID uuid.UUID) (bool, error)
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (store.Member, error)
	ApplyCommissionPayouts(ctx context.Context, sourceRef uuid.UUID, payouts []store.CommissionPayout) error
}

// EarningsBoard defines the leaderboard operations required by CommissionProcessor
type EarningsBoard interface {
	IncrementEarnings(ctx context.Context, memberID uuid.UUID, amount float64) error
}
