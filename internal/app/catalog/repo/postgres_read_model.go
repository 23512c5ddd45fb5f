package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

// PostgresReadModel implements ReadModel on a Postgres pool.
type PostgresReadModel struct {
	pool *database.Pool
	obs  observer
}

// NewPostgresReadModel creates a read model over pool. m may be nil.
func NewPostgresReadModel(pool *database.Pool, m *metrics.Metrics) *PostgresReadModel {
	return &PostgresReadModel{
		pool: pool,
		obs:  newObserver("postgresql", m),
	}
}

// ListProducts retrieves the products matching filter, ordered by title.
func (rm *PostgresReadModel) ListProducts(ctx context.Context, filter *domain.Filter) (products []*domain.Product, err error) {
	ctx, done := rm.obs.start(ctx, "list_products", attribute.Bool("catalog.filtered", !filter.IsEmpty()))
	defer func() { done(err) }()

	stmt := listQuery(filter, postgresPrice).Build(query.Postgres)

	var rows []m_product.Data
	err = rm.pool.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &rows, stmt.SQL, stmt.Args...)
	})
	if err != nil {
		return nil, storeError("list products", err)
	}

	products = make([]*domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, dataToProduct(&rows[i]))
	}
	return products, nil
}

// GetProduct retrieves a product by id or case-insensitive SKU.
func (rm *PostgresReadModel) GetProduct(ctx context.Context, idOrSKU string) (product *domain.Product, err error) {
	key := normalizeKey(idOrSKU)
	if key == "" {
		return nil, domain.ErrProductNotFound
	}

	ctx, done := rm.obs.start(ctx, "get_product")
	defer func() { done(err) }()

	stmt := getQuery(key).Build(query.Postgres)

	var row m_product.Data
	err = rm.pool.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &row, stmt.SQL, stmt.Args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, storeError("get product", err)
	}

	return dataToProduct(&row), nil
}

// Ping verifies the database is reachable.
func (rm *PostgresReadModel) Ping(ctx context.Context) (err error) {
	ctx, done := rm.obs.start(ctx, "ping")
	defer func() { done(err) }()

	if err = rm.pool.Ping(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// postgresBoundScale keeps bounds exact to far below a cent; NUMERIC compares them precisely.
const postgresBoundScale = 30

// postgresPrice binds the bound through Price.Value as decimal text.
func postgresPrice(p domain.Price, lower bool) interface{} {
	return p.RoundBound(postgresBoundScale, lower)
}
