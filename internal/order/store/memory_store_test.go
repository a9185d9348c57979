package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/order/domain"
)

func TestMemoryStore_Append_And_GetByID(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Order{ID: "order-1", UserID: "user-1", Status: domain.StatusPending})

	order, err := store.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID("nonexistent-id")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_List_InsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Order{ID: "order-1"})
	store.Append(&domain.Order{ID: "order-2"})

	orders := store.List()
	require.Len(t, orders, 2)
	assert.Equal(t, "order-1", orders[0].ID)
	assert.Equal(t, "order-2", orders[1].ID)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Order{ID: "order-1", Status: domain.StatusPending})

	updated, err := store.Update("order-1", func(o *domain.Order) {
		o.Status = domain.StatusConfirmed
		o.PaymentID = "pay-1"
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	stored, err := store.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Equal(t, "pay-1", stored.PaymentID)
}

func TestMemoryStore_Update_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Update("nonexistent-id", func(o *domain.Order) {})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_GetByID_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.Order{ID: "order-1", Status: domain.StatusPending})

	order, err := store.GetByID("order-1")
	require.NoError(t, err)
	order.Status = domain.StatusCancelled

	stored, err := store.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}
