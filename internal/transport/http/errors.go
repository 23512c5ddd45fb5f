package http

import (
	"errors"
	"net/http"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
)

const (
	msgNotFound     = "not found"
	msgInternal     = "internal server error"
	msgUnconfigured = "store not configured"
)

// mapDomainErrorToHTTP converts a use case error to a status code and a
// client-safe message. Store details never reach the response body.
func mapDomainErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrStoreNotConfigured):
		return http.StatusInternalServerError, msgUnconfigured
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
