package handler

import (
	"context"
	"errors"
	"net/http"

	"upline-server/internal/commission/processor"
	"upline-server/internal/events"
	"upline-server/internal/observability"
	"upline-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

// PurchaseStore defines the database operations required by the handler
type PurchaseStore interface {
	CreatePurchase(ctx context.Context, params store.CreatePurchaseParams) (store.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID uuid.UUID) (store.Purchase, error)
	GetLedgerEntriesBySource(ctx context.Context, sourceRef uuid.UUID) ([]store.LedgerEntry, error)
}

type Handler struct {
	processor processor.CommissionProcessor
	store     PurchaseStore
	publisher *events.Publisher
	logger    *observability.Logger
}

func New(processor processor.CommissionProcessor, store PurchaseStore, publisher *events.Publisher, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePurchaseRequest represents the request body for creating a purchase
type CreatePurchaseRequest struct {
	BuyerID        uuid.UUID `json:"buyer_id" binding:"required"`
	CreditedAmount float64   `json:"credited_amount" binding:"required,gt=0"`
}

// HandleCreatePurchase creates a purchase in pending_verification. The
// verify endpoint later publishes the event that triggers distribution.
func (h *Handler) HandleCreatePurchase(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	purchase, err := h.store.CreatePurchase(ctx, store.CreatePurchaseParams{
		BuyerID:        req.BuyerID,
		CreditedAmount: req.CreditedAmount,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create purchase", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

// HandleVerifyPurchase marks a purchase verified by publishing the
// purchase.verified event; the consumer runs the distribution.
func (h *Handler) HandleVerifyPurchase(c *gin.Context) {
	ctx := c.Request.Context()

	purchaseID, err := uuid.Parse(c.Param("purchase_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase id"})
		return
	}

	purchase, err := h.store.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "purchase not found"})
			return
		}
		h.logger.Error(ctx, "failed to load purchase", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if purchase.Status == store.PurchaseStatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "purchase already distributed"})
		return
	}

	if err := h.publisher.PublishPurchaseVerified(ctx, purchase.ID, purchase.BuyerID); err != nil {
		h.logger.Error(ctx, "failed to publish purchase.verified", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish event"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"purchase_id": purchase.ID, "status": "verification published"})
}

// HandleDistribute runs the distribution synchronously. Used for manual
// reprocessing when the event path is unavailable. Passing resume=true
// redrives a purchase stuck between the claim and the payout commit; the
// commit no-ops if the payouts already landed.
func (h *Handler) HandleDistribute(c *gin.Context) {
	ctx := c.Request.Context()

	purchaseID, err := uuid.Parse(c.Param("purchase_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase id"})
		return
	}

	result, err := h.processor.Distribute(ctx, processor.DistributeRequest{
		PurchaseID: purchaseID,
		Resume:     c.Query("resume") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrPurchaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "purchase not found"})
		case errors.Is(err, processor.ErrBuyerNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "buyer not found"})
		case errors.Is(err, processor.ErrCommitFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "distribution could not be committed"})
		default:
			h.logger.Error(ctx, "failed to distribute purchase", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if !result.Claimed {
		c.JSON(http.StatusOK, gin.H{"purchase_id": purchaseID, "distributed": false, "reason": "already distributed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchase_id":       purchaseID,
		"distributed":       true,
		"levels_paid":       result.LevelsPaid,
		"total_distributed": result.TotalDistributed,
	})
}

// HandleGetDistribution returns the ledger entries written for a purchase
func (h *Handler) HandleGetDistribution(c *gin.Context) {
	ctx := c.Request.Context()

	purchaseID, err := uuid.Parse(c.Param("purchase_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase id"})
		return
	}

	entries, err := h.store.GetLedgerEntriesBySource(ctx, purchaseID)
	if err != nil {
		h.logger.Error(ctx, "failed to load distribution ledger", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase_id": purchaseID, "entries": entries})
}
