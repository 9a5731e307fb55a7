package booking

import "fmt"

// BookingError is a failure the booking screens can explain to the user.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, msg string) *BookingError {
	return &BookingError{Code: code, Message: msg}
}

var (
	ErrStylistNotFound     = newBookingError("stylistNotFound", "stylist not found")
	ErrStylistInactive     = newBookingError("stylistInactive", "stylist is not taking bookings")
	ErrPortfolioNotFound   = newBookingError("portfolioNotFound", "portfolio not found for stylist")
	ErrAppointmentNotFound = newBookingError("appointmentNotFound", "appointment not found")
	ErrInvalidDate         = newBookingError("invalidDate", "date must be a future YYYY-MM-DD calendar date")
	ErrSlotUnavailable     = newBookingError("slotUnavailable", "selected time is not available")
	ErrInvalidTransition   = newBookingError("invalidTransition", "status change not allowed")
	ErrForbidden           = newBookingError("forbidden", "not allowed to access this appointment")
	ErrSessionNotFound     = newBookingError("sessionNotFound", "booking session not found or expired")
	ErrSessionIncomplete   = newBookingError("sessionIncomplete", "portfolio, date and time must be selected")
)
