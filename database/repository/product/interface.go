package productRepo

import (
	"context"

	"priisme/models"
)

// ProductRepository defines read access to the storefront catalog.
type ProductRepository interface {
	// ListActive returns active products, optionally filtered by category.
	ListActive(ctx context.Context, categoryID string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}
