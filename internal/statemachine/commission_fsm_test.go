package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
)

func TestCommissionFSM_ApprovePayLifecycle(t *testing.T) {
	record := &models.CommissionRecord{BookingID: 1, Status: engine.CommissionStatusPending}
	ctx := context.Background()

	assert.NoError(t, NewCommissionFSM(record).Approve(ctx, 99))
	assert.Equal(t, engine.CommissionStatusApproved, record.Status)
	assert.NotNil(t, record.ApprovedAt)
	assert.Equal(t, uint(99), *record.ApprovedByID)

	// Only a pending commission can be approved
	assert.Error(t, NewCommissionFSM(record).Approve(ctx, 99))

	assert.NoError(t, NewCommissionFSM(record).Pay(ctx, "NEFT-4411"))
	assert.Equal(t, engine.CommissionStatusPaid, record.Status)
	assert.NotNil(t, record.PaidAt)
	assert.Equal(t, "NEFT-4411", *record.PaymentRef)

	// Paid is terminal
	assert.Error(t, NewCommissionFSM(record).Pay(ctx, "NEFT-4412"))
	assert.Error(t, NewCommissionFSM(record).Revoke(ctx))
}

func TestCommissionFSM_PayRequiresApproval(t *testing.T) {
	record := &models.CommissionRecord{BookingID: 1, Status: engine.CommissionStatusPending}

	err := NewCommissionFSM(record).Pay(context.Background(), "")
	assert.Error(t, err)
	assert.Equal(t, engine.CommissionStatusPending, record.Status)
	assert.Nil(t, record.PaidAt)
}

func TestCommissionFSM_RevokeClearsApproval(t *testing.T) {
	record := &models.CommissionRecord{BookingID: 1, Status: engine.CommissionStatusPending}
	ctx := context.Background()

	assert.NoError(t, NewCommissionFSM(record).Approve(ctx, 99))
	assert.NoError(t, NewCommissionFSM(record).Revoke(ctx))

	assert.Equal(t, engine.CommissionStatusPending, record.Status)
	assert.Nil(t, record.ApprovedAt)
	assert.Nil(t, record.ApprovedByID)

	// Revoked commissions can be approved again
	assert.NoError(t, NewCommissionFSM(record).Approve(ctx, 100))
	assert.Equal(t, uint(100), *record.ApprovedByID)
}

func TestCommissionFSM_PayWithoutReference(t *testing.T) {
	record := &models.CommissionRecord{BookingID: 1, Status: engine.CommissionStatusApproved}

	assert.NoError(t, NewCommissionFSM(record).Pay(context.Background(), ""))
	assert.Equal(t, engine.CommissionStatusPaid, record.Status)
	assert.Nil(t, record.PaymentRef)
}
