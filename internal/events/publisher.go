package events

import (
	"context"
	"time"

	"upline-server/internal/clients/kafka"
	"upline-server/internal/observability"

	"github.com/google/uuid"
)

// Event types driving the two engines.
const (
	TypePurchaseVerified = "purchase.verified"
	TypeMemberRegistered = "member.registered"
)

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

// PublishPurchaseVerified publishes a purchase.verified event
func (p *Publisher) PublishPurchaseVerified(ctx context.Context, purchaseID, buyerID uuid.UUID) error {
	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      TypePurchaseVerified,
		SubjectID: purchaseID.String(),
		Data: map[string]interface{}{
			"purchase_id": purchaseID.String(),
			"buyer_id":    buyerID.String(),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return p.kafkaProducer.PublishEvent(ctx, event)
}

// PublishMemberRegistered publishes a member.registered event
func (p *Publisher) PublishMemberRegistered(ctx context.Context, memberID uuid.UUID, sponsorID *uuid.UUID) error {
	data := map[string]interface{}{
		"member_id": memberID.String(),
	}
	if sponsorID != nil {
		data["sponsor_id"] = sponsorID.String()
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      TypeMemberRegistered,
		SubjectID: memberID.String(),
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return p.kafkaProducer.PublishEvent(ctx, event)
}
