package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet-api/services"
	"socialnet-api/utils"
)

// respondServiceError maps the service error taxonomy onto distinct HTTP
// status codes. Anything outside the taxonomy is an internal error and its
// detail is not echoed to the client.
func respondServiceError(c *gin.Context, err error) {
	var status int

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateIdentity):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidOperation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	default:
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.SendError(c, status, err.Error())
}
