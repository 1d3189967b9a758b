// Package repository defines the storage contract shared by the product API
// backends.
package repository

import (
	"context"
	"errors"

	"github.com/sit722-devops/week09/internal/domain/models"
)

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// ProductStore persists catalog products for the development API server.
// Implementations assign sequential integer IDs and stamp created_at and
// updated_at on insert.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req models.NewProduct) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
