package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

const (
	selectSQL = "SELECT p.id, p.sku, p.title, p.description, p.price, p.image_url, p.tags, i.available AS stock, p.updated_at" +
		" FROM products p LEFT JOIN inventory i ON i.product_id = p.id"
	orderSQL = " ORDER BY p.title ASC, p.id ASC"
	getSQL   = selectSQL + " WHERE (p.id = $1 OR LOWER(p.sku) = $2) ORDER BY p.id ASC LIMIT $3"
)

var columns = []string{"id", "sku", "title", "description", "price", "image_url", "tags", "stock", "updated_at"}

func newTestReadModel(t *testing.T) (*PostgresReadModel, sqlmock.Sqlmock, *database.Pool) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)

	pool := database.NewPool(sqlx.NewDb(db, "postgres"), database.Options{MaxConnections: 2})
	t.Cleanup(func() { _ = pool.Close() })

	return NewPostgresReadModel(pool, metrics.New()), mock, pool
}

func strPtr(s string) *string { return &s }

func pricePtr(s string) *domain.Price {
	p, err := domain.ParseBound(s)
	if err != nil {
		panic(err)
	}
	return &p
}

func catalogRows() *sqlmock.Rows {
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).
		AddRow("p-103", "SKU-103", `27" Monitor`, nil, "199.00", nil, "{monitor,display}", int64(20), updated).
		AddRow("p-101", "SKU-101", "Mechanical Keyboard", nil, "59.00", nil, "{peripheral,keyboard}", int64(50), updated).
		AddRow("p-102", "SKU-102", "USB-C Cable", "1m braided", "7.50", "https://img/102.png", "{cable,usb-c}", nil, updated).
		AddRow("p-100", "SKU-100", "Wireless Mouse", nil, "19.99", nil, "{peripheral,mouse}", int64(120), updated)
}

func TestPostgresReadModel_ListProducts_NoFilter(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(selectSQL + orderSQL).WillReturnRows(catalogRows())

	products, err := rm.ListProducts(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "p-103", products[0].ID)
	assert.Equal(t, "p-100", products[3].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReadModel_ListProducts_AllFilters(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(selectSQL+
		" WHERE (LOWER(p.title) LIKE $1 OR LOWER(p.sku) LIKE $2)"+
		" AND EXISTS (SELECT 1 FROM UNNEST(p.tags) AS t WHERE LOWER(t) = $3)"+
		" AND p.price >= $4 AND p.price <= $5"+orderSQL).
		WithArgs("%mouse%", "%mouse%", "peripheral", "10.00", "50.00").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-100", "SKU-100", "Wireless Mouse", nil, "19.99", nil, "{peripheral,mouse}", int64(120), nil))

	products, err := rm.ListProducts(context.Background(), &domain.Filter{
		Query: strPtr("Mouse"),
		Tag:   strPtr("PERIPHERAL"),
		Min:   pricePtr("10"),
		Max:   pricePtr("50"),
	})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "SKU-100", products[0].SKU)
	assert.Nil(t, products[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReadModel_ListProducts_InvertedRangeIsEmpty(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(selectSQL+" WHERE p.price >= $1 AND p.price <= $2"+orderSQL).
		WithArgs("50.00", "10.00").
		WillReturnRows(sqlmock.NewRows(columns))

	products, err := rm.ListProducts(context.Background(), &domain.Filter{Min: pricePtr("50"), Max: pricePtr("10")})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestPostgresReadModel_ListProducts_SubCentBoundsBindExactly(t *testing.T) {
	tests := []struct {
		name   string
		filter *domain.Filter
		where  string
		arg    string
	}{
		{"min above a cent", &domain.Filter{Min: pricePtr("19.991")}, " WHERE p.price >= $1", "19.991"},
		{"min at half a cent", &domain.Filter{Min: pricePtr("19.995")}, " WHERE p.price >= $1", "19.995"},
		{"max below a cent", &domain.Filter{Max: pricePtr("19.985")}, " WHERE p.price <= $1", "19.985"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm, mock, _ := newTestReadModel(t)
			mock.ExpectQuery(selectSQL + tt.where + orderSQL).
				WithArgs(tt.arg).
				WillReturnRows(sqlmock.NewRows(columns))

			_, err := rm.ListProducts(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresReadModel_ListProducts_BadStoredPrice(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(selectSQL + orderSQL).WillReturnRows(sqlmock.NewRows(columns).
		AddRow("p-1", "SKU-1", "A", nil, "abc", nil, nil, nil, nil))

	_, err := rm.ListProducts(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestPostgresReadModel_ListProducts_WildcardsAreLiteral(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(selectSQL+" WHERE (LOWER(p.title) LIKE $1 OR LOWER(p.sku) LIKE $2)"+orderSQL).
		WithArgs(`%100\%%`, `%100\%%`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := rm.ListProducts(context.Background(), &domain.Filter{Query: strPtr("100%")})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReadModel_ListProducts_StoreFailure(t *testing.T) {
	rm, mock, pool := newTestReadModel(t)
	mock.ExpectQuery(selectSQL + orderSQL).WillReturnError(errors.New("connection reset by peer"))

	_, err := rm.ListProducts(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPostgresReadModel_ListProducts_StockAbsentVersusZero(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(selectSQL + orderSQL).WillReturnRows(sqlmock.NewRows(columns).
		AddRow("p-1", "SKU-1", "A", nil, "1.00", nil, nil, nil, nil).
		AddRow("p-2", "SKU-2", "B", nil, "1.00", nil, "{}", int64(0), nil))

	products, err := rm.ListProducts(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Nil(t, products[0].Stock)
	assert.Equal(t, []string{}, products[0].Tags)
	require.NotNil(t, products[1].Stock)
	assert.Equal(t, int64(0), *products[1].Stock)
}

func TestPostgresReadModel_GetProduct_BySKUIgnoringCase(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	mock.ExpectQuery(getSQL).
		WithArgs("sku-100", "sku-100", int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-100", "SKU-100", "Wireless Mouse", nil, "19.99", nil, "{peripheral,mouse}", int64(120), updated))

	product, err := rm.GetProduct(context.Background(), "sku-100")

	require.NoError(t, err)
	assert.Equal(t, "p-100", product.ID)
	assert.Equal(t, "Wireless Mouse", product.Title)
	assert.Equal(t, "19.99", product.Price.String())
	require.NotNil(t, product.Stock)
	assert.Equal(t, int64(120), *product.Stock)
	require.NotNil(t, product.UpdatedAt)
	assert.Equal(t, "2024-03-01T11:00:00Z", *product.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReadModel_GetProduct_SKU100Scenario(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(getSQL).
		WithArgs("SKU-100", "sku-100", int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-100", "SKU-100", "Wireless Mouse", nil, "19.99", nil, "{peripheral,mouse}", int64(120), nil))

	product, err := rm.GetProduct(context.Background(), "SKU-100")

	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", product.Title)
	assert.InDelta(t, 19.99, product.Price.Float64(), 1e-9)
	assert.Equal(t, int64(120), *product.Stock)
}

func TestPostgresReadModel_GetProduct_NotFound(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(getSQL).
		WithArgs("nope", "nope", int64(1)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := rm.GetProduct(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestPostgresReadModel_GetProduct_EmptyKeyIssuesNoQuery(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)

	for _, key := range []string{"", "   "} {
		_, err := rm.GetProduct(context.Background(), key)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReadModel_GetProduct_StoreFailure(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectQuery(getSQL).WillReturnError(errors.New("timeout"))

	_, err := rm.GetProduct(context.Background(), "p-100")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestPostgresReadModel_GetProduct_CallerCancellationDoesNotAbortQuery(t *testing.T) {
	rm, mock, pool := newTestReadModel(t)
	ctx, cancel := context.WithCancel(context.Background())

	mock.ExpectQuery(getSQL).
		WithArgs("p-100", "p-100", int64(1)).
		WillDelayFor(20 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-100", "SKU-100", "Wireless Mouse", nil, "19.99", nil, "{}", nil, nil))

	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	product, err := rm.GetProduct(ctx, "p-100")

	require.NoError(t, err)
	assert.Equal(t, "p-100", product.ID)
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPostgresReadModel_Ping(t *testing.T) {
	rm, mock, _ := newTestReadModel(t)
	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("refused"))

	require.NoError(t, rm.Ping(context.Background()))

	err := rm.Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
