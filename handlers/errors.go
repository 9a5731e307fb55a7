package handlers

import (
	"errors"
	"net/http"

	"stylebook/services/booking"
	"stylebook/services/stylist"
	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var bookingErrorStatus = map[*booking.BookingError]int{
	booking.ErrStylistNotFound:     http.StatusNotFound,
	booking.ErrPortfolioNotFound:   http.StatusNotFound,
	booking.ErrAppointmentNotFound: http.StatusNotFound,
	booking.ErrSessionNotFound:     http.StatusNotFound,
	booking.ErrStylistInactive:     http.StatusConflict,
	booking.ErrSlotUnavailable:     http.StatusConflict,
	booking.ErrInvalidTransition:   http.StatusConflict,
	booking.ErrInvalidDate:         http.StatusBadRequest,
	booking.ErrSessionIncomplete:   http.StatusBadRequest,
	booking.ErrForbidden:           http.StatusForbidden,
}

// respondError maps service errors to HTTP responses. Unknown errors are logged and
// answered with a generic 500.
func respondError(c *gin.Context, err error, fallback string) {
	var bookingErr *booking.BookingError
	if errors.As(err, &bookingErr) {
		status, ok := bookingErrorStatus[bookingErr]
		if !ok {
			status = http.StatusBadRequest
		}
		utils.JSONErrorWithCode(c, status, bookingErr.Code, bookingErr.Message, "")
		return
	}

	var scheduleErr *stylist.ScheduleError
	switch {
	case errors.As(err, &scheduleErr):
		utils.JSONErrorWithCode(c, http.StatusBadRequest, "invalidSchedule", scheduleErr.Error(), "")
	case errors.Is(err, stylist.ErrStylistNotFound):
		utils.JSONErrorWithCode(c, http.StatusNotFound, "stylistNotFound", err.Error(), "")
	case errors.Is(err, stylist.ErrPortfolioNotFound):
		utils.JSONErrorWithCode(c, http.StatusNotFound, "portfolioNotFound", err.Error(), "")
	case errors.Is(err, stylist.ErrForbidden):
		utils.JSONErrorWithCode(c, http.StatusForbidden, "forbidden", err.Error(), "")
	default:
		getLogger(c).Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback, "")
	}
}

func bindError(c *gin.Context, err error) {
	utils.JSONErrorWithCode(c, http.StatusBadRequest, "invalidRequest", "Invalid request payload", err.Error())
}

// actorFrom reads the caller identity set by the auth middleware.
func actorFrom(c *gin.Context) booking.Actor {
	return booking.Actor{
		ID:   c.GetString(utils.UserIDContextKey),
		Role: c.GetString(utils.RoleContextKey),
	}
}
