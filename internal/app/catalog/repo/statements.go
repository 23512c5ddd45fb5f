package repo

import (
	"strings"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
)

// priceArg converts a price bound into the parameter type the driver expects.
// lower is set for the minimum bound.
type priceArg func(p domain.Price, lower bool) interface{}

func baseQuery() *query.Builder {
	joinTable, joinOn := m_product.InventoryJoin()
	return query.From(m_product.TableName+" "+m_product.Alias).
		Select(m_product.SelectColumns()...).
		LeftJoin(joinTable, joinOn)
}

// listQuery appends one predicate per present filter field. Every value is bound.
func listQuery(filter *domain.Filter, price priceArg) *query.Builder {
	b := baseQuery()

	if filter != nil {
		if filter.Query != nil {
			b = b.Where(query.Or(
				query.ContainsFold(m_product.Col(m_product.Title), *filter.Query),
				query.ContainsFold(m_product.Col(m_product.SKU), *filter.Query),
			))
		}
		if filter.Tag != nil {
			b = b.Where(query.AnyFold(m_product.Col(m_product.Tags), *filter.Tag))
		}
		if filter.Min != nil {
			b = b.Where(query.Gte(m_product.Col(m_product.Price), price(*filter.Min, true)))
		}
		if filter.Max != nil {
			b = b.Where(query.Lte(m_product.Col(m_product.Price), price(*filter.Max, false)))
		}
	}

	return b.
		OrderBy(m_product.Col(m_product.Title), query.Asc).
		OrderBy(m_product.Col(m_product.ID), query.Asc)
}

// getQuery matches the exact id or the SKU ignoring case. The lowest id wins if both match.
func getQuery(idOrSKU string) *query.Builder {
	return baseQuery().
		Where(query.Or(
			query.Eq(m_product.Col(m_product.ID), idOrSKU),
			query.EqualFold(m_product.Col(m_product.SKU), idOrSKU),
		)).
		OrderBy(m_product.Col(m_product.ID), query.Asc).
		Limit(1)
}

// normalizeKey trims the lookup key; an empty result means "not found" without a query.
func normalizeKey(idOrSKU string) string {
	return strings.TrimSpace(idOrSKU)
}
