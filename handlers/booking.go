package handlers

import (
	"net/http"

	"stylebook/models"
	"stylebook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the multi-step booking session used by the booking screen.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// InitiateSession creates a new booking session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var req models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	session, err := h.Service.StartSession(c.Request.Context(), actorFrom(c).ID, req)
	if err != nil {
		respondError(c, err, "Failed to start booking session")
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), actorFrom(c).ID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to load booking session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession records the portfolio, date, time or notes picked on the booking screen.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	session, err := h.Service.UpdateSession(c.Request.Context(), actorFrom(c).ID, c.Param("sessionID"), req)
	if err != nil {
		respondError(c, err, "Failed to update booking session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking turns the session into a pending appointment.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	appt, err := h.Service.ConfirmSession(c.Request.Context(), actorFrom(c).ID, sessionID)
	if err != nil {
		respondError(c, err, "Failed to confirm booking")
		return
	}
	getLogger(c).Info("Booking confirmed", zap.String("sessionID", sessionID), zap.String("appointmentID", appt.ID))
	c.JSON(http.StatusCreated, appt)
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), actorFrom(c).ID, c.Param("sessionID")); err != nil {
		respondError(c, err, "Failed to cancel booking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
