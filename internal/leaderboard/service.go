package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"upline-server/internal/clients/redis"
	"upline-server/internal/observability"

	"github.com/google/uuid"
	redisLib "github.com/redis/go-redis/v9"
)

// ErrNotRanked is returned when a member has no earnings recorded yet.
var ErrNotRanked = errors.New("member not ranked")

// earningsKey is the ZSET holding cumulative commission earnings per member.
const earningsKey = "lb:earnings"

// Service handles the top-earner leaderboard over a Redis ZSET. The ledger
// is the source of truth; the board is a derived view and may be rebuilt.
type Service struct {
	redis  *redis.Client
	logger *observability.Logger
}

// Entry represents one member's position in the earnings leaderboard
type Entry struct {
	MemberID string  `json:"member_id"`
	Earnings float64 `json:"earnings"`
	Rank     int     `json:"rank"`
}

// New creates a new leaderboard service
func New(redis *redis.Client, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		logger: logger,
	}
}

// IncrementEarnings adds a commission credit to a member's cumulative score
func (s *Service) IncrementEarnings(ctx context.Context, memberID uuid.UUID, amount float64) error {
	if !s.redis.IsEnabled() {
		return fmt.Errorf("Redis is not enabled")
	}

	_, err := s.redis.ZIncrBy(ctx, earningsKey, amount, memberID.String())
	if err != nil {
		s.logger.Error(ctx, "failed to increment earnings in Redis", err)
		return fmt.Errorf("failed to increment earnings: %w", err)
	}
	return nil
}

// GetTopEarners returns the top N members by cumulative earnings
func (s *Service) GetTopEarners(ctx context.Context, limit int) ([]Entry, error) {
	if !s.redis.IsEnabled() {
		return nil, fmt.Errorf("Redis is not enabled")
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "limit", Value: limit},
	)

	results, err := s.redis.ZRevRangeWithScores(ctx, earningsKey, 0, int64(limit-1))
	if err != nil {
		s.logger.Error(ctx, "failed to get top earners from Redis", err)
		return nil, fmt.Errorf("failed to get top earners: %w", err)
	}

	entries := make([]Entry, len(results))
	for i, result := range results {
		entries[i] = Entry{
			MemberID: result.Member.(string),
			Earnings: result.Score,
			Rank:     i + 1,
		}
	}
	return entries, nil
}

// GetMemberRank returns a member's rank by earnings (1-indexed, highest first)
func (s *Service) GetMemberRank(ctx context.Context, memberID uuid.UUID) (int64, error) {
	if !s.redis.IsEnabled() {
		return 0, fmt.Errorf("Redis is not enabled")
	}

	rank, err := s.redis.ZRevRank(ctx, earningsKey, memberID.String())
	if err == redisLib.Nil {
		return 0, ErrNotRanked
	}
	if err != nil {
		s.logger.Error(ctx, "failed to get rank from Redis", err)
		return 0, fmt.Errorf("failed to get rank: %w", err)
	}

	return rank + 1, nil
}

// GetMemberEarnings returns a member's cumulative earnings score
func (s *Service) GetMemberEarnings(ctx context.Context, memberID uuid.UUID) (float64, error) {
	if !s.redis.IsEnabled() {
		return 0, fmt.Errorf("Redis is not enabled")
	}

	score, err := s.redis.ZScore(ctx, earningsKey, memberID.String())
	if err == redisLib.Nil {
		return 0, ErrNotRanked
	}
	if err != nil {
		s.logger.Error(ctx, "failed to get earnings from Redis", err)
		return 0, fmt.Errorf("failed to get earnings: %w", err)
	}

	return score, nil
}

// GetMemberCount returns how many members have earned at least once
func (s *Service) GetMemberCount(ctx context.Context) (int64, error) {
	if !s.redis.IsEnabled() {
		return 0, fmt.Errorf("Redis is not enabled")
	}

	count, err := s.redis.ZCard(ctx, earningsKey)
	if err != nil {
		s.logger.Error(ctx, "failed to get member count from Redis", err)
		return 0, fmt.Errorf("failed to get member count: %w", err)
	}

	return count, nil
}
