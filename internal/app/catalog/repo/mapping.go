package repo

import (
	"fmt"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
)

// dataToProduct converts a Postgres row to a Product. The price was validated by Price.Scan.
func dataToProduct(data *m_product.Data) *domain.Product {
	product := &domain.Product{
		ID:    data.ID,
		SKU:   data.SKU,
		Title: data.Title,
		Price: data.Price,
		Tags:  tagsOrEmpty(data.Tags),
	}
	if data.Description.Valid {
		product.Description = &data.Description.String
	}
	if data.ImageURL.Valid {
		product.ImageURL = &data.ImageURL.String
	}
	if data.Stock.Valid {
		stock := data.Stock.Int64
		product.Stock = &stock
	}
	if data.UpdatedAt.Valid {
		ts := domain.FormatTimestamp(data.UpdatedAt.Time)
		product.UpdatedAt = &ts
	}
	return product
}

// spannerDataToProduct converts a Spanner row to a Product.
func spannerDataToProduct(data *m_product.SpannerData) (*domain.Product, error) {
	if !data.Price.Valid {
		return nil, fmt.Errorf("product %s: %w", data.ID, domain.ErrInvalidPrice)
	}
	price, err := domain.NewPriceFromRat(&data.Price.Numeric)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", data.ID, err)
	}

	tags := make([]string, 0, len(data.Tags))
	for _, t := range data.Tags {
		if t.Valid {
			tags = append(tags, t.StringVal)
		}
	}

	product := &domain.Product{
		ID:    data.ID,
		SKU:   data.SKU,
		Title: data.Title,
		Price: price,
		Tags:  tags,
	}
	if data.Description.Valid {
		product.Description = &data.Description.StringVal
	}
	if data.ImageURL.Valid {
		product.ImageURL = &data.ImageURL.StringVal
	}
	if data.Stock.Valid {
		stock := data.Stock.Int64
		product.Stock = &stock
	}
	if data.UpdatedAt.Valid {
		ts := domain.FormatTimestamp(data.UpdatedAt.Time)
		product.UpdatedAt = &ts
	}
	return product, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// storeError classifies a driver or query failure as ErrStoreUnavailable, keeping the cause.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}
