package list_products

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// Request carries the raw, optional filter values as received by a front end.
// Nil or blank values mean the filter is absent.
type Request struct {
	Q   *string
	Tag *string
	Min *string
	Max *string
}

// Result contains the matching products and their count.
type Result struct {
	Items []*domain.Product
	Count int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
	logger    *zap.Logger
}

// NewQuery creates a new list products query. logger may be nil.
func NewQuery(readModel contracts.ReadModel, logger *zap.Logger) *Query {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Query{
		readModel: readModel,
		logger:    logger,
	}
}

// Execute retrieves the products matching the request, ordered by title.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	filter := q.Filter(req)

	items, err := q.readModel.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Product{}
	}

	return &Result{
		Items: items,
		Count: len(items),
	}, nil
}

// Filter converts a request to a domain filter. Malformed price bounds are dropped
// rather than rejected, so a bad value widens the listing instead of failing it.
func (q *Query) Filter(req *Request) *domain.Filter {
	filter := &domain.Filter{}
	if req == nil {
		return filter
	}

	filter.Query = present(req.Q)
	filter.Tag = present(req.Tag)
	filter.Min = q.bound("min", req.Min)
	filter.Max = q.bound("max", req.Max)
	return filter
}

func (q *Query) bound(name string, raw *string) *domain.Price {
	value := present(raw)
	if value == nil {
		return nil
	}

	price, err := domain.ParseBound(*value)
	if err != nil {
		q.logger.Debug("Ignoring malformed price filter",
			zap.String("filter", name),
			zap.String("value", *value),
			zap.Error(err),
		)
		return nil
	}
	return &price
}

func present(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
