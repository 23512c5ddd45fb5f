package get_product

import (
	"context"
	"strings"

	"github.com/light-bringer/catalog-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// Request contains the product id or SKU to retrieve.
type Request struct {
	IDOrSKU string
}

// Query handles the get product query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product by id or case-insensitive SKU.
// Returns domain.ErrProductNotFound when nothing matches, including for an empty key.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	if req == nil || strings.TrimSpace(req.IDOrSKU) == "" {
		return nil, domain.ErrProductNotFound
	}
	return q.readModel.GetProduct(ctx, req.IDOrSKU)
}
