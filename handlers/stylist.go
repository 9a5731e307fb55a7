package handlers

import (
	"net/http"

	"stylebook/models"
	"stylebook/services/booking"
	"stylebook/services/stylist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StylistHandler serves stylist discovery, profile, schedule and availability endpoints.
type StylistHandler struct {
	Service stylist.StylistService
	Booking booking.BookingService
}

func NewStylistHandler(service stylist.StylistService, bookingService booking.BookingService) *StylistHandler {
	return &StylistHandler{Service: service, Booking: bookingService}
}

// SearchHandler lists active stylists for the discovery screen.
func (h *StylistHandler) SearchHandler(c *gin.Context) {
	var req models.StylistSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to search stylists")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *StylistHandler) GetStylistHandler(c *gin.Context) {
	s, err := h.Service.GetStylist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load stylist")
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetPortfolioHandler returns a single portfolio entry so the booking screen can show its duration and price.
func (h *StylistHandler) GetPortfolioHandler(c *gin.Context) {
	portfolio, err := h.Service.GetPortfolio(c.Request.Context(), c.Param("id"), c.Param("portfolioId"))
	if err != nil {
		respondError(c, err, "Failed to load portfolio")
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

func (h *StylistHandler) GetScheduleHandler(c *gin.Context) {
	schedule, err := h.Service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// UpdateScheduleHandler replaces the weekly schedule of the authenticated stylist.
func (h *StylistHandler) UpdateScheduleHandler(c *gin.Context) {
	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor := actorFrom(c)
	schedule, err := h.Service.UpdateSchedule(c.Request.Context(), actor.ID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update schedule")
		return
	}
	getLogger(c).Info("Schedule saved", zap.String("stylistID", schedule.StylistID))
	c.JSON(http.StatusOK, schedule)
}

// AvailabilityHandler returns the bookable start times for a portfolio on a date.
func (h *StylistHandler) AvailabilityHandler(c *gin.Context) {
	var query struct {
		PortfolioID string `form:"portfolioId" binding:"required"`
		Date        string `form:"date" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Booking.GetAvailableTimes(c.Request.Context(), c.Param("id"), query.PortfolioID, query.Date)
	if err != nil {
		respondError(c, err, "Failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, res)
}
