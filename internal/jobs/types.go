package jobs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCommissionDistribute = "commission:distribute"
	TypeTeamPropagate        = "team:propagate"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// CommissionRetryJobPayload reprocesses a purchase whose distribution
// transaction failed after the purchase was claimed.
type CommissionRetryJobPayload struct {
	PurchaseID uuid.UUID `json:"purchase_id"`
}

// NewCommissionRetryTask creates a new commission distribution retry task
func NewCommissionRetryTask(payload CommissionRetryJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCommissionDistribute, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}

// PropagationRetryJobPayload resumes a team propagation walk at the ancestor
// whose transaction failed. ResumeFrom nil runs a fresh walk and is only
// useful after an operator released the event claim.
type PropagationRetryJobPayload struct {
	MemberID   uuid.UUID  `json:"member_id"`
	ResumeFrom *uuid.UUID `json:"resume_from,omitempty"`
}

// NewPropagationRetryTask creates a new team propagation retry task
func NewPropagationRetryTask(payload PropagationRetryJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTeamPropagate, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}
