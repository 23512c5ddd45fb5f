package repo

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

// SpannerReadModel implements ReadModel for Spanner.
type SpannerReadModel struct {
	pool *database.SpannerPool
	obs  observer
}

// NewSpannerReadModel creates a new Spanner read model. m may be nil.
func NewSpannerReadModel(pool *database.SpannerPool, m *metrics.Metrics) *SpannerReadModel {
	return &SpannerReadModel{
		pool: pool,
		obs:  newObserver("spanner", m),
	}
}

// ListProducts retrieves the products matching filter, ordered by title.
func (rm *SpannerReadModel) ListProducts(ctx context.Context, filter *domain.Filter) (products []*domain.Product, err error) {
	ctx, done := rm.obs.start(ctx, "list_products", attribute.Bool("catalog.filtered", !filter.IsEmpty()))
	defer func() { done(err) }()

	products, err = rm.query(ctx, listQuery(filter, spannerPrice).Build(query.Spanner))
	if err != nil {
		return nil, storeError("list products", err)
	}
	return products, nil
}

// GetProduct retrieves a product by id or case-insensitive SKU.
func (rm *SpannerReadModel) GetProduct(ctx context.Context, idOrSKU string) (product *domain.Product, err error) {
	key := normalizeKey(idOrSKU)
	if key == "" {
		return nil, domain.ErrProductNotFound
	}

	ctx, done := rm.obs.start(ctx, "get_product")
	defer func() { done(err) }()

	products, err := rm.query(ctx, getQuery(key).Build(query.Spanner))
	if err != nil {
		return nil, storeError("get product", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return products[0], nil
}

// Ping runs a trivial single-use query.
func (rm *SpannerReadModel) Ping(ctx context.Context) (err error) {
	ctx, done := rm.obs.start(ctx, "ping")
	defer func() { done(err) }()

	if err = rm.pool.Ping(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// query runs stmt on a single-use read-only transaction through the pool, so a caller
// that goes away does not abort it.
func (rm *SpannerReadModel) query(ctx context.Context, stmt query.Statement) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0)
	err := rm.pool.WithClient(ctx, func(ctx context.Context, client *spanner.Client) error {
		iter := client.Single().Query(ctx, spanner.Statement{
			SQL:    stmt.SQL,
			Params: stmt.Params(),
		})
		defer iter.Stop()

		for {
			row, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				return nil
			}
			if err != nil {
				return err
			}

			var data m_product.SpannerData
			if err := row.ToStruct(&data); err != nil {
				return err
			}

			product, err := spannerDataToProduct(&data)
			if err != nil {
				return err
			}
			products = append(products, product)
		}
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// spannerNumericScale is the scale of a Spanner NUMERIC. Bounds are rounded toward the
// inside of the range so a finer bound still excludes the cent it sits above or below.
const spannerNumericScale = 9

func spannerPrice(p domain.Price, lower bool) interface{} {
	return p.RoundBound(spannerNumericScale, lower).Rat()
}
