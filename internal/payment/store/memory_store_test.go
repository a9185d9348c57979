package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/payment/domain"
)

func TestMemoryStore_Append_And_GetByID(t *testing.T) {
	store := NewMemoryStore()

	store.Append(&domain.Payment{ID: "pay-1", OrderID: "order-1", Amount: 99.99, Status: domain.StatusCompleted})

	payment, err := store.GetByID("pay-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", payment.OrderID)
	assert.Equal(t, domain.StatusCompleted, payment.Status)
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID("nonexistent-id")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestMemoryStore_GetByID_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Payment{ID: "pay-1", Status: domain.StatusCompleted})

	payment, err := store.GetByID("pay-1")
	require.NoError(t, err)

	// Mutating the returned record must not leak into storage.
	payment.Status = domain.StatusFailed

	again, err := store.GetByID("pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, again.Status)
}

func TestMemoryStore_ListByOrder(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Payment{ID: "pay-1", OrderID: "order-1"})
	store.Append(&domain.Payment{ID: "pay-2", OrderID: "order-2"})
	store.Append(&domain.Payment{ID: "pay-3", OrderID: "order-1"})

	payments := store.ListByOrder("order-1")
	require.Len(t, payments, 2)
	assert.Equal(t, "pay-1", payments[0].ID)
	assert.Equal(t, "pay-3", payments[1].ID)
}

func TestMemoryStore_ListByOrder_Empty(t *testing.T) {
	store := NewMemoryStore()

	payments := store.ListByOrder("order-1")
	assert.Empty(t, payments)
	assert.NotNil(t, payments)
}

func TestMemoryStore_RefundsWithoutOrderID_NotListed(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Payment{ID: "pay-1", OrderID: "order-1"})
	store.Append(&domain.Payment{ID: "ref-1", OriginalPaymentID: "pay-1", Status: domain.StatusRefunded})

	payments := store.ListByOrder("order-1")
	require.Len(t, payments, 1)
	assert.Equal(t, "pay-1", payments[0].ID)
}
