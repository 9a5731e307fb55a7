package handlers

import (
	"net/http"
	"strings"

	"stylebook/models"
	"stylebook/services/booking"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves booking and appointment management endpoints.
type AppointmentHandler struct {
	Service booking.BookingService
}

func NewAppointmentHandler(service booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// BookHandler books an appointment directly, without a session.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	appt, err := h.Service.BookAppointment(c.Request.Context(), actorFrom(c).ID, req)
	if err != nil {
		respondError(c, err, "Failed to book appointment")
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ViewHandler returns an appointment with the times available on ?date= (default: its own date).
func (h *AppointmentHandler) ViewHandler(c *gin.Context) {
	view, err := h.Service.ViewAppointment(c.Request.Context(), actorFrom(c), c.Param("id"), c.Query("date"))
	if err != nil {
		respondError(c, err, "Failed to load appointment")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	appt, err := h.Service.Reschedule(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to reschedule appointment")
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	appt, err := h.Service.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update appointment status")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListHandler lists the caller's appointments, optionally filtered by ?status=a,b.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	var statuses []string
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	appts, err := h.Service.ListAppointments(c.Request.Context(), actorFrom(c), statuses)
	if err != nil {
		respondError(c, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
