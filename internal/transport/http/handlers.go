package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/health"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/list_products"
)

// CatalogHandler serves the catalog routes. Like the gRPC handler it only
// translates between the wire and the query use cases.
type CatalogHandler struct {
	getProduct   *get_product.Query
	listProducts *list_products.Query
	reporter     *health.Reporter
	logger       *zap.Logger
}

// NewCatalogHandler creates a new HTTP catalog handler.
func NewCatalogHandler(getProduct *get_product.Query, listProducts *list_products.Query, reporter *health.Reporter, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{
		getProduct:   getProduct,
		listProducts: listProducts,
		reporter:     reporter,
		logger:       logger,
	}
}

// ListProducts handles GET /catalog?q&tag&min&max.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	req := &list_products.Request{
		Q:   queryParam(c, "q"),
		Tag: queryParam(c, "tag"),
		Min: queryParam(c, "min"),
		Max: queryParam(c, "max"),
	}

	result, err := h.listProducts.Execute(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Items: toProducts(result.Items),
		Count: result.Count,
	})
}

// GetProduct handles GET /catalog/:idOrSku.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	key := c.Param("idOrSku")

	product, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{IDOrSKU: key})
	if err != nil {
		h.fail(c, err, zap.String("id", key))
		return
	}

	c.JSON(http.StatusOK, toProduct(product))
}

// Health handles GET /healthz. An unreachable store is 503; a missing
// configuration is a deployment fault and reports 500.
func (h *CatalogHandler) Health(c *gin.Context) {
	report := h.reporter.Check(c.Request.Context())

	code := http.StatusOK
	switch report.Store {
	case health.StoreError:
		code = http.StatusServiceUnavailable
	case health.StoreUnconfigured:
		code = http.StatusInternalServerError
	}

	c.JSON(code, HealthResponse{
		OK:      report.OK,
		DB:      string(report.Store),
		Message: report.Message,
	})
}

func (h *CatalogHandler) fail(c *gin.Context, err error, fields ...zap.Field) {
	if errors.Is(err, domain.ErrProductNotFound) {
		h.logger.Debug("Product not found", fields...)
	} else {
		h.logger.Error("Catalog request failed", append(fields, zap.Error(err))...)
	}

	code, msg := mapDomainErrorToHTTP(err)
	c.AbortWithStatusJSON(code, ErrorResponse{Error: msg})
}

// queryParam returns nil when the parameter is missing.
func queryParam(c *gin.Context, name string) *string {
	v, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &v
}
