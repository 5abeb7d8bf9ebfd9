package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/looplab/fsm"
)

// CommissionFSM wraps a commission record with its state machine
type CommissionFSM struct {
	record *models.CommissionRecord
	fsm    *fsm.FSM
}

// NewCommissionFSM creates a new commission state machine
func NewCommissionFSM(record *models.CommissionRecord) *CommissionFSM {
	cfsm := &CommissionFSM{
		record: record,
	}

	cfsm.fsm = fsm.NewFSM(
		record.Status,
		fsm.Events{
			// pending → approved
			{Name: "approve", Src: []string{engine.CommissionStatusPending}, Dst: engine.CommissionStatusApproved},

			// approved → paid
			{Name: "pay", Src: []string{engine.CommissionStatusApproved}, Dst: engine.CommissionStatusPaid},

			// approved → pending (revoke before payout)
			{Name: "revoke", Src: []string{engine.CommissionStatusApproved}, Dst: engine.CommissionStatusPending},
		},
		fsm.Callbacks{},
	)

	return cfsm
}

// Approve transitions commission to approved state
func (c *CommissionFSM) Approve(ctx context.Context, approverID uint) error {
	if !c.record.MayApprove() {
		return fmt.Errorf("commission cannot be approved in current state: %s", c.record.Status)
	}

	if err := c.fsm.Event(ctx, "approve"); err != nil {
		return fmt.Errorf("failed to approve commission: %w", err)
	}

	now := time.Now()
	c.record.Status = c.fsm.Current()
	c.record.ApprovedAt = &now
	c.record.ApprovedByID = &approverID
	return nil
}

// Pay transitions commission to paid state
func (c *CommissionFSM) Pay(ctx context.Context, paymentRef string) error {
	if !c.record.MayPay() {
		return fmt.Errorf("commission cannot be paid in current state: %s", c.record.Status)
	}

	if err := c.fsm.Event(ctx, "pay"); err != nil {
		return fmt.Errorf("failed to pay commission: %w", err)
	}

	now := time.Now()
	c.record.Status = c.fsm.Current()
	c.record.PaidAt = &now
	if paymentRef != "" {
		c.record.PaymentRef = &paymentRef
	}
	return nil
}

// Revoke transitions commission from approved back to pending
func (c *CommissionFSM) Revoke(ctx context.Context) error {
	if err := c.fsm.Event(ctx, "revoke"); err != nil {
		return fmt.Errorf("failed to revoke commission approval: %w", err)
	}

	c.record.Status = c.fsm.Current()
	c.record.ApprovedAt = nil
	c.record.ApprovedByID = nil
	return nil
}

// Current returns the current state
func (c *CommissionFSM) Current() string {
	return c.fsm.Current()
}

// Can checks if a transition is possible
func (c *CommissionFSM) Can(event string) bool {
	return c.fsm.Can(event)
}
