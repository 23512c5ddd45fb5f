package catalog

import (
	"strconv"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/list_products"
	catalogv1 "github.com/light-bringer/catalog-service/proto/catalog/v1"
)

// productToProto converts a domain Product to its wire form.
func productToProto(p *domain.Product) *catalogv1.Product {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &catalogv1.Product{
		Id:          p.ID,
		Sku:         p.SKU,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.Float64(),
		ImageUrl:    p.ImageURL,
		Tags:        tags,
		Stock:       p.Stock,
		UpdatedAt:   p.UpdatedAt,
	}
}

// listRequestFromProto converts wire filters to the query request.
// Numeric bounds are formatted back to decimal text so both front ends share one parser.
func listRequestFromProto(req *catalogv1.ListProductsRequest) *list_products.Request {
	return &list_products.Request{
		Q:   req.Q,
		Tag: req.Tag,
		Min: formatBound(req.Min),
		Max: formatBound(req.Max),
	}
}

func formatBound(v *float64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	return &s
}
