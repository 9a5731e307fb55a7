package models

import "time"

// AppointmentEvent is published when an appointment is created or changes status.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointmentId"`
	StylistID     string    `json:"stylistId"`
	CustomerID    string    `json:"customerId"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// AppointmentTaskPayload is carried by the background status tasks.
type AppointmentTaskPayload struct {
	AppointmentID   string `json:"appointmentId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	FromStatus      string `json:"fromStatus"`
	ToStatus        string `json:"toStatus"`
}
