package contracts

import (
	"context"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// ReadModel defines the interface for catalog queries.
// One instance is shared by every front end.
type ReadModel interface {
	// ListProducts returns the products matching filter, ordered by title ascending.
	// A nil or empty filter returns the whole catalog.
	ListProducts(ctx context.Context, filter *domain.Filter) ([]*domain.Product, error)

	// GetProduct resolves idOrSKU as a product id or a case-insensitive SKU.
	// Returns domain.ErrProductNotFound when nothing matches.
	GetProduct(ctx context.Context, idOrSKU string) (*domain.Product, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
