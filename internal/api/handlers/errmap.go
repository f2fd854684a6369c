package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/pkg/response"
)

// statusFor maps service errors onto HTTP statuses: missing entities are 404,
// role refusals 403, state conflicts 409, everything else a validation 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrTicketNotFound),
		errors.Is(err, application.ErrBidNotFound),
		errors.Is(err, application.ErrWorkOrderNotFound),
		errors.Is(err, application.ErrInvoiceNotFound),
		errors.Is(err, application.ErrOrgNotFound),
		errors.Is(err, application.ErrGrantNotFound),
		errors.Is(err, application.ErrVendorNotFound),
		errors.Is(err, application.ErrLocationNotFound),
		errors.Is(err, application.ErrEventNotFound),
		errors.Is(err, application.ErrSupportNotFound),
		errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ticket.ErrRoleNotAllowed),
		errors.Is(err, application.ErrGrantMissing),
		errors.Is(err, application.ErrPermissionNotGranted),
		errors.Is(err, application.ErrVendorTierNotGranted),
		errors.Is(err, application.ErrNotBidOwner):
		return http.StatusForbidden
	case errors.Is(err, ticket.ErrIllegalTransition),
		errors.Is(err, application.ErrBidNotPending),
		errors.Is(err, application.ErrBidNotCountered),
		errors.Is(err, application.ErrTicketNotBiddable),
		errors.Is(err, application.ErrBadInvoiceStatus),
		errors.Is(err, application.ErrBookingConflict),
		errors.Is(err, application.ErrWorkOrdersFrozen),
		errors.Is(err, application.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), response.ErrorResponse{Error: err.Error()})
}
