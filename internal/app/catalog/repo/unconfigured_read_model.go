package repo

import (
	"context"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// UnconfiguredReadModel stands in when no store address was supplied.
// Every call fails immediately with domain.ErrStoreNotConfigured.
type UnconfiguredReadModel struct{}

// ListProducts fails fast.
func (UnconfiguredReadModel) ListProducts(context.Context, *domain.Filter) ([]*domain.Product, error) {
	return nil, domain.ErrStoreNotConfigured
}

// GetProduct fails fast.
func (UnconfiguredReadModel) GetProduct(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrStoreNotConfigured
}

// Ping fails fast.
func (UnconfiguredReadModel) Ping(context.Context) error {
	return domain.ErrStoreNotConfigured
}
