package http

import (
	"encoding/json"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

// Product is the JSON representation of a catalog product.
type Product struct {
	ID          string      `json:"id"`
	SKU         string      `json:"sku"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Price       json.Number `json:"price"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	Tags        []string    `json:"tags"`
	Stock       *int64      `json:"stock,omitempty"`
	UpdatedAt   *string     `json:"updatedAt,omitempty"`
}

// ListResponse is the body of GET /catalog.
type ListResponse struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	DB      string `json:"db"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toProduct renders the price as a bare decimal so the stored value is echoed exactly.
func toProduct(p *domain.Product) Product {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Product{
		ID:          p.ID,
		SKU:         p.SKU,
		Title:       p.Title,
		Description: p.Description,
		Price:       json.Number(p.Price.String()),
		ImageURL:    p.ImageURL,
		Tags:        tags,
		Stock:       p.Stock,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProducts(products []*domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProduct(p))
	}
	return out
}
