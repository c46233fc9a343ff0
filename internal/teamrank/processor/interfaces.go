package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"upline-server/internal/store"

	"github.com/google/uuid"
)

// TeamStore defines the database operations required by TeamRankProcessor
type TeamStore interface {
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (store.Member, error)
	ClaimEvent(ctx context.Context, engine string, eventRef uuid.UUID) (bool, error)
	ReleaseEventClaim(ctx context.Context, engine string, eventRef uuid.UUID) error
	ApplyTeamPropagation(ctx context.Context, ancestorID uuid.UUID, paidMember bool, sourceRef uuid.UUID, eval store.RankEvaluator) (store.TeamPropagationResult, error)
}
