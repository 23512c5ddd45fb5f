package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/list_products"
	catalogv1 "github.com/light-bringer/catalog-service/proto/catalog/v1"
)

// Handler implements the gRPC CatalogService interface.
// It's a thin coordinator that delegates to queries.
type Handler struct {
	catalogv1.UnimplementedCatalogServiceServer

	getProduct   *get_product.Query
	listProducts *list_products.Query
	logger       *zap.Logger
}

// NewHandler creates a new gRPC catalog handler.
func NewHandler(getProduct *get_product.Query, listProducts *list_products.Query, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		getProduct:   getProduct,
		listProducts: listProducts,
		logger:       logger,
	}
}

// GetProduct retrieves a product by id or SKU.
func (h *Handler) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.Product, error) {
	product, err := h.getProduct.Execute(ctx, &get_product.Request{IDOrSKU: req.GetId()})
	if err != nil {
		return nil, h.fail(err, zap.String("id", req.GetId()))
	}

	return productToProto(product), nil
}

// ListProducts retrieves the products matching the request filters.
func (h *Handler) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	result, err := h.listProducts.Execute(ctx, listRequestFromProto(req))
	if err != nil {
		return nil, h.fail(err)
	}

	items := make([]*catalogv1.Product, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, productToProto(p))
	}

	return &catalogv1.ListProductsResponse{
		Items: items,
		Count: int32(result.Count),
	}, nil
}

// fail logs the cause and returns the mapped status. Not-found is an expected outcome.
func (h *Handler) fail(err error, fields ...zap.Field) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		h.logger.Debug("Product not found", fields...)
	} else {
		h.logger.Error("Catalog request failed", append(fields, zap.Error(err))...)
	}
	return mapDomainErrorToGRPC(err)
}
