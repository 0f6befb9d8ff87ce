package handlers

import (
	"errors"
	"net/http"

	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// bindJSON decodes the body into payload and answers 400 on failure.
func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return false
	}
	return true
}

// validationFailed answers 400 with the field messages when there are any.
func validationFailed(c *gin.Context, fields map[string]string) bool {
	if len(fields) == 0 {
		return false
	}
	appErr := pkg.NewValidationError("Validation failed", fields)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	return true
}

// respondError writes err through mapper. Validation errors and the shared
// sentinels are handled here so resource mappers only list their own.
func respondError(c *gin.Context, err error, mapper func(error) *pkg.AppError) {
	var appErr *pkg.AppError
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		msg := "Validation failed"
		if errors.Is(err, usecase.ErrTotalsMismatch) {
			appErr = pkg.NewDomainErrorSimple("TOTALS_MISMATCH", "Document totals do not match items", http.StatusBadRequest)
			appErr.Fields = vErr.Fields
			break
		}
		if errors.Is(err, usecase.ErrUnbalancedEntry) {
			appErr = pkg.NewDomainErrorSimple("UNBALANCED_ENTRY", "Journal entry is not balanced", http.StatusBadRequest)
			appErr.Fields = vErr.Fields
			break
		}
		appErr = pkg.NewValidationError(msg, vErr.Fields)
	case errors.Is(err, usecase.ErrForbidden):
		appErr = errForbidden
	default:
		appErr = mapper(err)
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"request_id": middleware.RequestID(c),
			"path":       c.FullPath(),
		}).WithError(err).Error("[http][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
