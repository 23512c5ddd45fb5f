package repo

import (
	"context"
	"sort"
	"strings"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// MemoryReadModel serves a fixed catalog held in memory. The catalog never changes after
// construction, so concurrent reads need no locking.
type MemoryReadModel struct {
	products []*domain.Product
}

// NewMemoryReadModel creates a read model over products. The slice is copied.
func NewMemoryReadModel(products ...*domain.Product) *MemoryReadModel {
	rm := &MemoryReadModel{products: make([]*domain.Product, 0, len(products))}
	for _, p := range products {
		rm.products = append(rm.products, cloneProduct(p))
	}
	sort.SliceStable(rm.products, func(i, j int) bool {
		return lessByTitle(rm.products[i], rm.products[j])
	})
	return rm
}

// ListProducts filters the catalog in memory, ordered by title.
func (rm *MemoryReadModel) ListProducts(_ context.Context, filter *domain.Filter) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(rm.products))
	for _, p := range rm.products {
		if filter.Matches(p) {
			products = append(products, cloneProduct(p))
		}
	}
	return products, nil
}

// GetProduct resolves idOrSKU against ids and SKUs (ignoring SKU case).
func (rm *MemoryReadModel) GetProduct(_ context.Context, idOrSKU string) (*domain.Product, error) {
	key := normalizeKey(idOrSKU)
	if key == "" {
		return nil, domain.ErrProductNotFound
	}

	var found *domain.Product
	for _, p := range rm.products {
		if p.ID != key && !strings.EqualFold(p.SKU, key) {
			continue
		}
		if found == nil || p.ID < found.ID {
			found = p
		}
	}
	if found == nil {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(found), nil
}

// Ping always succeeds.
func (rm *MemoryReadModel) Ping(context.Context) error {
	return nil
}

func lessByTitle(a, b *domain.Product) bool {
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return a.ID < b.ID
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	return &c
}
