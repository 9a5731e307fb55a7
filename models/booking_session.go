package models

import "time"

// BookingSession holds the booking screen's draft between steps.
type BookingSession struct {
	SessionID      string    `json:"sessionId"`
	CustomerID     string    `json:"customerId"`
	StylistID      string    `json:"stylistId"`
	PortfolioID    string    `json:"portfolioId,omitempty"`
	Date           string    `json:"date,omitempty"`
	Time           string    `json:"time,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	AvailableTimes []string  `json:"availableTimes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StartSessionRequest opens a booking session for a stylist.
type StartSessionRequest struct {
	StylistID   string `json:"stylistId" binding:"required"`
	PortfolioID string `json:"portfolioId"`
}

// UpdateSessionRequest changes the session selections. Empty fields are left as they are.
type UpdateSessionRequest struct {
	PortfolioID string `json:"portfolioId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}
