package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
)

// NewRouter builds the gin engine for the JSON front end.
//
// Routes:
//
//	GET /healthz            store reachability
//	GET /catalog            filtered product list
//	GET /catalog/:idOrSku   one product by id or case-insensitive SKU
//	GET /metrics            Prometheus exposition
func NewRouter(handler *CatalogHandler, serviceName string, logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		Recovery(logger),
		RequestID(),
		otelgin.Middleware(serviceName),
		AccessLog(logger),
		Metrics(m),
		CORS(),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/catalog", handler.ListProducts)
	router.GET("/catalog/:idOrSku", handler.GetProduct)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
	})

	return router
}
