package handlers

import (
	"errors"
	"io"
	"net/http"

	"gestao_reparos/internal/usecase"
	"gestao_reparos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindOptionalJSON binds the body into obj. An empty body is not an error.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func mapQuoteError(err error) *pkg.AppError {
	return mapLedgerError(err, "QUOTE_NOT_FOUND", "Quote not found")
}

func mapServiceError(err error) *pkg.AppError {
	return mapLedgerError(err, "SERVICE_NOT_FOUND", "Service not found")
}

func mapFinanceError(err error) *pkg.AppError {
	return mapLedgerError(err, "NOT_FOUND", "Not found")
}

func mapLedgerError(err error, notFoundCode, notFoundMessage string) *pkg.AppError {
	var (
		vErr *usecase.ValidationError
		nErr *usecase.NotFoundError
		tErr *usecase.InvalidTransitionError
	)
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest).
			WithDetail("field", vErr.Field).
			WithDetail("reason", vErr.Reason)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest)
	case errors.As(err, &nErr):
		return pkg.NewDomainError(notFoundCode, notFoundMessage, err, http.StatusNotFound).
			WithDetail("id", nErr.ID)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError(notFoundCode, notFoundMessage, err, http.StatusNotFound)
	case errors.As(err, &tErr):
		return pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict).
			WithDetail("id", tErr.ID).
			WithDetail("expected", tErr.Expected).
			WithDetail("actual", tErr.Actual)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
