package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/product/domain"
)

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID("nonexistent-id")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStore_List_Filters(t *testing.T) {
	store := NewSeededStore()

	tests := []struct {
		name   string
		filter Filter
		ids    []string
	}{
		{"no filter returns everything", Filter{}, []string{"1", "2", "3", "4", "5"}},
		{"by category", Filter{Category: "Electronics"}, []string{"1", "2"}},
		{"by min price", Filter{MinPrice: 100}, []string{"2", "4"}},
		{"by max price", Filter{MaxPrice: 80}, []string{"3", "5"}},
		{"price range", Filter{MinPrice: 50, MaxPrice: 150}, []string{"1", "4"}},
		{"category and price", Filter{Category: "Electronics", MaxPrice: 100}, []string{"1"}},
		{"nothing matches", Filter{Category: "Groceries"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := store.List(tt.filter)
			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewSeededStore()

	updated, err := store.Update("3", func(p *domain.Product) {
		p.Stock = 99
	})
	require.NoError(t, err)
	assert.Equal(t, 99, updated.Stock)

	stored, err := store.GetByID("3")
	require.NoError(t, err)
	assert.Equal(t, 99, stored.Stock)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewSeededStore()

	require.NoError(t, store.Delete("5"))
	assert.Len(t, store.List(Filter{}), 4)

	_, err := store.GetByID("5")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, store.Delete("5"), ErrProductNotFound)
}

func TestNewSeededStore_Catalog(t *testing.T) {
	store := NewSeededStore()

	products := store.List(Filter{})
	require.Len(t, products, 5)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
	assert.Equal(t, 99.99, products[0].Price)
	assert.Equal(t, 50, products[0].Stock)
}
