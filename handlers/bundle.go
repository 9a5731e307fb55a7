// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Stylist     *StylistHandler
	Appointment *AppointmentHandler
	Booking     *BookingHandler
}
