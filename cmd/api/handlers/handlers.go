package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-alert/cmd/api/dto"
	"internship-alert/cmd/api/services"
)

// writeServiceError maps service errors onto HTTP responses.
// Validation failures carry the offending field; extraction failures are
// upstream faults, not client mistakes.
func writeServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "internship_not_found"})
	case errors.Is(err, services.ErrExtractionFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: services.ExtractionFailedMessage})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	}
}
