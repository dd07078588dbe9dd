package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/item"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortDomainError maps usecase sentinels to HTTP statuses. Forbidden
// actors get 404, not 403, so resource existence is never leaked.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, errs.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrSelfBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Owner cannot book own item", nil)
	case errors.Is(err, errs.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, errs.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is already decided", nil)
	case errors.Is(err, errs.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking end must be after start", nil)
	case errors.Is(err, errs.ErrBackdatedBooking):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking cannot be in the past", nil)
	case errors.Is(err, errs.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available", nil)
	case errors.Is(err, errs.ErrInvalidPagination):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
	case errors.Is(err, errs.ErrUnknownBucket):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state", nil)
	case errors.Is(err, errs.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a finished approved booking", nil)
	case errors.Is(err, errs.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
	case errors.Is(err, item.ErrEmptyName), errors.Is(err, item.ErrEmptyDescription):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
