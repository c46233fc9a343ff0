package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateMemberParams represents parameters for creating a member
type CreateMemberParams struct {
	SponsorID *uuid.UUID
	IsPaid    bool
}

const sqlCreateMember = `
INSERT INTO members (sponsor_id, is_paid, balance, total_team_size, paid_team_size, free_rank, paid_rank)
VALUES ($1, $2, 0, 0, 0, 'none', 'none')
RETURNING id, sponsor_id, balance, total_team_size, paid_team_size, is_paid, free_rank, paid_rank, created_at, updated_at
`

// CreateMember creates a member with default counters and ranks
func (s *Store) CreateMember(ctx context.Context, params CreateMemberParams) (Member, error) {
	var member Member
	err := s.db.GetContext(ctx, &member, sqlCreateMember, params.SponsorID, params.IsPaid)
	if err != nil {
		s.logger.Error(ctx, "failed to create member", err)
		return Member{}, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

const sqlGetMemberByID = `
SELECT id, sponsor_id, balance, total_team_size, paid_team_size, is_paid, free_rank, paid_rank, created_at, updated_at
FROM members
WHERE id = $1
`

// GetMemberByID retrieves a member by ID
func (s *Store) GetMemberByID(ctx context.Context, memberID uuid.UUID) (Member, error) {
	var member Member
	err := s.db.GetContext(ctx, &member, sqlGetMemberByID, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get member by id", err)
		return Member{}, fmt.Errorf("failed to get member by id: %w", err)
	}
	return member, nil
}

const sqlGetMembersBySponsor = `
SELECT id, sponsor_id, balance, total_team_size, paid_team_size, is_paid, free_rank, paid_rank, created_at, updated_at
FROM members
WHERE sponsor_id = $1
ORDER BY created_at ASC
`

// GetMembersBySponsor retrieves the direct downline of a sponsor
func (s *Store) GetMembersBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]Member, error) {
	var members []Member
	err := s.db.SelectContext(ctx, &members, sqlGetMembersBySponsor, sponsorID)
	if err != nil {
		s.logger.Error(ctx, "failed to get members by sponsor", err)
		return nil, fmt.Errorf("failed to get members by sponsor: %w", err)
	}
	return members, nil
}
