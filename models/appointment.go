package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusDeclined  = "declined"
)

// ExistingAppointment is the view of a booked interval used for availability checks.
type ExistingAppointment struct {
	AppointmentDate string `json:"appointment_date"` // "2006-01-02"
	AppointmentTime string `json:"appointment_time"` // wall-clock start, e.g. "10:00" or "2:30 PM"
	Duration        string `json:"duration"`         // "<N> hour(s)"
	Status          string `json:"status"`
}

// Appointment is a persisted booking between a customer and a stylist.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	StylistID       string    `bson:"stylistId" json:"stylistId"`
	CustomerID      string    `bson:"customerId" json:"customerId"`
	PortfolioID     string    `bson:"portfolioId" json:"portfolioId"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointment_date"`
	AppointmentTime string    `bson:"appointmentTime" json:"appointment_time"`
	Duration        string    `bson:"duration" json:"duration"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Price           float64   `bson:"price" json:"price"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Existing projects the appointment onto the fields the availability calculator reads.
func (a Appointment) Existing() ExistingAppointment {
	return ExistingAppointment{
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Duration:        a.Duration,
		Status:          a.Status,
	}
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	StylistID  string
	CustomerID string
	Date       string
	Statuses   []string
}

// BookAppointmentRequest is submitted by the booking screen.
type BookAppointmentRequest struct {
	StylistID   string `json:"stylistId" binding:"required"`
	PortfolioID string `json:"portfolioId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// RescheduleRequest moves an appointment to a new date and time.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// UpdateStatusRequest changes an appointment's status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved confirmed cancelled completed declined"`
}

// AvailableTimesResponse is returned to the time picker.
type AvailableTimesResponse struct {
	StylistID   string   `json:"stylistId"`
	PortfolioID string   `json:"portfolioId"`
	Date        string   `json:"date"`
	Duration    string   `json:"duration"`
	Times       []string `json:"times"`
}

// AppointmentView is the payload of the appointment viewing screen.
type AppointmentView struct {
	Appointment    Appointment `json:"appointment"`
	Date           string      `json:"date"`
	AvailableTimes []string    `json:"availableTimes"`
}
