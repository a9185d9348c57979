package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/user/domain"
)

func TestMemoryStore_Append_And_GetByID(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.User{ID: "user-1", Name: "John Doe", Email: "john@example.com"})

	user, err := store.GetByID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID("nonexistent-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.User{ID: "user-1", Role: "customer"})

	updated, err := store.Update("user-1", func(u *domain.User) {
		u.Role = "admin"
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	stored, err := store.GetByID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", stored.Role)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	store.Append(&domain.User{ID: "user-1"})

	require.NoError(t, store.Delete("user-1"))

	_, err := store.GetByID("user-1")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, store.Delete("user-1"), ErrUserNotFound)
}

func TestNewSeededStore(t *testing.T) {
	store := NewSeededStore()

	users := store.List()
	require.Len(t, users, 2)
	assert.Equal(t, "John Doe", users[0].Name)
	assert.Equal(t, "customer", users[0].Role)
	assert.Equal(t, "Jane Smith", users[1].Name)
	assert.Equal(t, "admin", users[1].Role)
}
