package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/notification/domain"
)

func seed(s *MemoryStore) {
	s.Append(&domain.Notification{ID: "n-1", UserID: "user-1", Type: "order_confirmed", Status: domain.StatusSent})
	s.Append(&domain.Notification{ID: "n-2", UserID: "user-2", Type: "order_confirmed", Status: domain.StatusSent})
	s.Append(&domain.Notification{ID: "n-3", UserID: "user-1", Type: "order_shipped", Status: domain.StatusRead})
}

func TestMemoryStore_List_NoFilter(t *testing.T) {
	store := NewMemoryStore()
	seed(store)

	assert.Len(t, store.List(Filter{}), 3)
}

func TestMemoryStore_List_ByUser(t *testing.T) {
	store := NewMemoryStore()
	seed(store)

	result := store.List(Filter{UserID: "user-1"})
	require.Len(t, result, 2)
	assert.Equal(t, "n-1", result[0].ID)
	assert.Equal(t, "n-3", result[1].ID)
}

func TestMemoryStore_List_ByUserTypeAndStatus(t *testing.T) {
	store := NewMemoryStore()
	seed(store)

	result := store.List(Filter{UserID: "user-1", Type: "order_confirmed"})
	require.Len(t, result, 1)
	assert.Equal(t, "n-1", result[0].ID)

	result = store.List(Filter{UserID: "user-1", Status: domain.StatusSent})
	require.Len(t, result, 1)
	assert.Equal(t, "n-1", result[0].ID)
}

func TestMemoryStore_MarkRead(t *testing.T) {
	store := NewMemoryStore()
	seed(store)

	at := time.Now().UTC()
	n, err := store.MarkRead("n-1", at)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRead, n.Status)
	require.NotNil(t, n.ReadAt)
	assert.Equal(t, at, *n.ReadAt)
}

func TestMemoryStore_MarkRead_OverwritesTimestamp(t *testing.T) {
	store := NewMemoryStore()
	seed(store)

	first := time.Now().UTC()
	_, err := store.MarkRead("n-1", first)
	require.NoError(t, err)

	second := first.Add(time.Minute)
	n, err := store.MarkRead("n-1", second)
	require.NoError(t, err)

	require.NotNil(t, n.ReadAt)
	assert.Equal(t, second, *n.ReadAt)
}

func TestMemoryStore_MarkRead_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.MarkRead("nonexistent-id", time.Now())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
