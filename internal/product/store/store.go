package store

import (
	"errors"

	"github.com/fjod/go_shop/internal/product/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Filter narrows a catalog listing. Zero values match everything.
type Filter struct {
	Category string
	MinPrice float64
	MaxPrice float64
}

// ProductStore is the in-memory product catalog.
type ProductStore interface {
	Append(product *domain.Product)
	GetByID(id string) (*domain.Product, error)
	List(filter Filter) []*domain.Product
	Update(id string, mutate func(*domain.Product)) (*domain.Product, error)
	Delete(id string) error
}
