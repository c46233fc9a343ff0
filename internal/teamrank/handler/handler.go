package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"upline-server/internal/events"
	"upline-server/internal/observability"
	"upline-server/internal/store"
	"upline-server/internal/teamrank"
	"upline-server/internal/teamrank/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

// MemberStore defines the database operations required by the handler
type MemberStore interface {
	CreateMember(ctx context.Context, params store.CreateMemberParams) (store.Member, error)
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (store.Member, error)
	GetMembersBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]store.Member, error)
	GetLedgerEntriesByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]store.LedgerEntry, error)
	CountLedgerEntriesByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type Handler struct {
	processor processor.TeamRankProcessor
	store     MemberStore
	publisher *events.Publisher
	logger    *observability.Logger
}

func New(processor processor.TeamRankProcessor, store MemberStore, publisher *events.Publisher, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateMemberRequest represents the request body for creating a member
type CreateMemberRequest struct {
	SponsorID *uuid.UUID `json:"sponsor_id"`
	IsPaid    bool       `json:"is_paid"`
}

// HandleCreateMember creates a member record with default counters and ranks.
// The registered endpoint later publishes the event that triggers propagation.
func (h *Handler) HandleCreateMember(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.SponsorID != nil {
		if _, err := h.store.GetMemberByID(ctx, *req.SponsorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "sponsor not found"})
				return
			}
			h.logger.Error(ctx, "failed to load sponsor", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	}

	member, err := h.store.CreateMember(ctx, store.CreateMemberParams{
		SponsorID: req.SponsorID,
		IsPaid:    req.IsPaid,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create member", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// HandleGetDownline returns a member's direct downline
func (h *Handler) HandleGetDownline(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	members, err := h.store.GetMembersBySponsor(ctx, memberID)
	if err != nil {
		h.logger.Error(ctx, "failed to load downline", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member_id": memberID, "members": members})
}

// HandleMemberRegistered publishes the member.registered event; the consumer
// runs the propagation.
func (h *Handler) HandleMemberRegistered(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	member, err := h.store.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		h.logger.Error(ctx, "failed to load member", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.publisher.PublishMemberRegistered(ctx, member.ID, member.SponsorID); err != nil {
		h.logger.Error(ctx, "failed to publish member.registered", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish event"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"member_id": member.ID, "status": "registration published"})
}

// HandlePropagate runs the propagation synchronously. Used for manual
// reprocessing when the event path is unavailable.
func (h *Handler) HandlePropagate(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	result, err := h.processor.Propagate(ctx, processor.PropagateRequest{MemberID: memberID})
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		case errors.Is(err, processor.ErrCommitFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":             "propagation could not be committed",
				"ancestors_updated": result.AncestorsUpdated,
			})
		default:
			h.logger.Error(ctx, "failed to propagate registration", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if !result.Claimed {
		c.JSON(http.StatusOK, gin.H{"member_id": memberID, "propagated": false, "reason": "already propagated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id":         memberID,
		"propagated":        true,
		"ancestors_updated": result.AncestorsUpdated,
		"rank_changes":      result.RankChanges,
	})
}

// HandleReleaseClaim removes the propagation claim for a registration so the
// event can be redriven. Operator path after exhausted retries; a fresh
// propagate call afterwards replays the whole walk.
func (h *Handler) HandleReleaseClaim(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	if err := h.processor.ReleaseClaim(ctx, memberID); err != nil {
		h.logger.Error(ctx, "failed to release propagation claim", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member_id": memberID, "status": "claim released"})
}

// HandleGetMember returns a member's directory record
func (h *Handler) HandleGetMember(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	member, err := h.store.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		h.logger.Error(ctx, "failed to load member", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// HandleGetLedger returns a member's ledger entries, newest first
func (h *Handler) HandleGetLedger(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, err := h.store.GetLedgerEntriesByRecipient(ctx, memberID, limit, offset)
	if err != nil {
		h.logger.Error(ctx, "failed to load ledger entries", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	total, err := h.store.CountLedgerEntriesByRecipient(ctx, memberID)
	if err != nil {
		h.logger.Error(ctx, "failed to count ledger entries", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id": memberID,
		"entries":   entries,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// trackProgress reports a member's standing on one rank ladder
type trackProgress struct {
	Track           string  `json:"track"`
	CurrentRank     string  `json:"current_rank"`
	TeamSize        int     `json:"team_size"`
	NextTier        *string `json:"next_tier,omitempty"`
	NextRequirement *int    `json:"next_requirement,omitempty"`
	Remaining       *int    `json:"remaining,omitempty"`
}

// HandleGetRank returns a member's ranks and progress toward the next tier
// on each track
func (h *Handler) HandleGetRank(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	member, err := h.store.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		h.logger.Error(ctx, "failed to load member", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id": member.ID,
		"tracks": []trackProgress{
			progressFor(store.TrackFree, member.FreeRank, member.TotalTeamSize),
			progressFor(store.TrackPaid, member.PaidRank, member.PaidTeamSize),
		},
	})
}

func progressFor(track store.Track, currentRank string, teamSize int) trackProgress {
	p := trackProgress{
		Track:       string(track),
		CurrentRank: currentRank,
		TeamSize:    teamSize,
	}

	if next, ok := teamrank.NextTier(teamrank.TiersForTrack(track), currentRank); ok {
		remaining := next.Threshold - teamSize
		if remaining < 0 {
			remaining = 0
		}
		name := next.Name
		requirement := next.Threshold
		p.NextTier = &name
		p.NextRequirement = &requirement
		p.Remaining = &remaining
	}
	return p
}
