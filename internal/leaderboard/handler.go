package leaderboard

import (
	"errors"
	"net/http"
	"strconv"

	"upline-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the earnings leaderboard
type Handler struct {
	service *Service
	logger  *observability.Logger
}

// NewHandler creates a new leaderboard handler
func NewHandler(service *Service, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGetTopEarners returns the top earners by cumulative commissions
func (h *Handler) HandleGetTopEarners(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 25
	}

	entries, err := h.service.GetTopEarners(ctx, limit)
	if err != nil {
		h.logger.Error(ctx, "failed to get top earners", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard unavailable"})
		return
	}

	count, err := h.service.GetMemberCount(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to get member count", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "member_count": count})
}

// HandleGetMemberStanding returns one member's rank and cumulative earnings
func (h *Handler) HandleGetMemberStanding(c *gin.Context) {
	ctx := c.Request.Context()

	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	rank, err := h.service.GetMemberRank(ctx, memberID)
	if err != nil {
		if errors.Is(err, ErrNotRanked) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member has no recorded earnings"})
			return
		}
		h.logger.Error(ctx, "failed to get member rank", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard unavailable"})
		return
	}

	earnings, err := h.service.GetMemberEarnings(ctx, memberID)
	if err != nil {
		h.logger.Error(ctx, "failed to get member earnings", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id": memberID,
		"rank":      rank,
		"earnings":  earnings,
	})
}
