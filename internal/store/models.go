package store

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus represents the lifecycle state of a purchase
type PurchaseStatus string

const (
	PurchaseStatusPendingVerification PurchaseStatus = "pending_verification"
	PurchaseStatusCompleted           PurchaseStatus = "completed"
)

// LedgerKind represents the kind of credit a ledger entry records
type LedgerKind string

const (
	LedgerKindCommission LedgerKind = "COMMISSION"
	LedgerKindRankReward LedgerKind = "RANK_REWARD"
)

// Track represents one of the two independent rank ladders
type Track string

const (
	TrackFree Track = "free"
	TrackPaid Track = "paid"
)

// RankNone is the default rank of a member on either track
const RankNone = "none"

// Member represents one node of the sponsor forest. Balance and the team
// counters are only ever mutated through SQL-side increments; ranks move
// forward only.
type Member struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	SponsorID *uuid.UUID `db:"sponsor_id" json:"sponsor_id,omitempty"`

	Balance       float64 `db:"balance" json:"balance"`
	TotalTeamSize int     `db:"total_team_size" json:"total_team_size"`
	PaidTeamSize  int     `db:"paid_team_size" json:"paid_team_size"`

	IsPaid   bool   `db:"is_paid" json:"is_paid"`
	FreeRank string `db:"free_rank" json:"free_rank"`
	PaidRank string `db:"paid_rank" json:"paid_rank"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Purchase represents an externally created purchase awaiting distribution.
// The Distributor claims it by transitioning pending_verification → completed
// exactly once.
type Purchase struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	BuyerID        uuid.UUID      `db:"buyer_id" json:"buyer_id"`
	CreditedAmount float64        `db:"credited_amount" json:"credited_amount"`
	Status         PurchaseStatus `db:"status" json:"status"`

	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// LedgerEntry is an immutable audit record of one credit. The store exposes
// insert and read for ledger entries, never update or delete.
type LedgerEntry struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	RecipientID uuid.UUID  `db:"recipient_id" json:"recipient_id"`
	Kind        LedgerKind `db:"kind" json:"kind"`
	Amount      float64    `db:"amount" json:"amount"`

	Level      *int    `db:"level" json:"level,omitempty"`
	RewardName *string `db:"reward_name" json:"reward_name,omitempty"`
	Track      *string `db:"track" json:"track,omitempty"`

	SourceRef uuid.UUID `db:"source_ref" json:"source_ref"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
