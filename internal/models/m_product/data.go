package m_product

import (
	"database/sql"

	"cloud.google.com/go/spanner"
	"github.com/lib/pq"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// Data represents a catalog row as read from Postgres (products LEFT JOIN inventory).
type Data struct {
	ID          string         `db:"id"`
	SKU         string         `db:"sku"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Price       domain.Price   `db:"price"`
	ImageURL    sql.NullString `db:"image_url"`
	Tags        pq.StringArray `db:"tags"`
	Stock       sql.NullInt64  `db:"stock"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

// SpannerData represents the same row as read from Cloud Spanner.
type SpannerData struct {
	ID          string               `spanner:"id"`
	SKU         string               `spanner:"sku"`
	Title       string               `spanner:"title"`
	Description spanner.NullString   `spanner:"description"`
	Price       spanner.NullNumeric  `spanner:"price"`
	ImageURL    spanner.NullString   `spanner:"image_url"`
	Tags        []spanner.NullString `spanner:"tags"`
	Stock       spanner.NullInt64    `spanner:"stock"`
	UpdatedAt   spanner.NullTime     `spanner:"updated_at"`
}
