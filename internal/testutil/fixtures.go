package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/light-bringer/catalog-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/app/catalog/repo"
)

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// ProductIDs returns the ids of products in order.
func ProductIDs(products []*domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// CountingReadModel wraps a read model and counts every call that reaches it.
// Errors, when set, replace the wrapped result.
type CountingReadModel struct {
	Inner contracts.ReadModel

	ListCalls atomic.Int64
	GetCalls  atomic.Int64
	PingCalls atomic.Int64

	mu         sync.Mutex
	ListErr    error
	GetErr     error
	PingErr    error
	LastFilter *domain.Filter
}

// NewSeededReadModel returns a counting read model over the demo catalog.
func NewSeededReadModel() *CountingReadModel {
	return &CountingReadModel{Inner: repo.NewMemoryReadModel(repo.SeedCatalog()...)}
}

// FailWith makes every subsequent call fail with err.
func (c *CountingReadModel) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ListErr, c.GetErr, c.PingErr = err, err, err
}

func (c *CountingReadModel) ListProducts(ctx context.Context, filter *domain.Filter) ([]*domain.Product, error) {
	c.ListCalls.Add(1)
	c.mu.Lock()
	c.LastFilter = filter
	err := c.ListErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.Inner.ListProducts(ctx, filter)
}

func (c *CountingReadModel) GetProduct(ctx context.Context, idOrSKU string) (*domain.Product, error) {
	c.GetCalls.Add(1)
	c.mu.Lock()
	err := c.GetErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.Inner.GetProduct(ctx, idOrSKU)
}

func (c *CountingReadModel) Ping(ctx context.Context) error {
	c.PingCalls.Add(1)
	c.mu.Lock()
	err := c.PingErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.Inner.Ping(ctx)
}
