package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// writeError maps domain errors to HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrNoContent):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrLLMUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
