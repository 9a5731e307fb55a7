package models

import "time"

// TimeRange is a wall-clock window in 24-hour "HH:MM" form.
type TimeRange struct {
	From string `bson:"from" json:"from" binding:"required"`
	To   string `bson:"to" json:"to" binding:"required"`
}

// DaySchedule describes one weekday of a stylist's weekly availability.
// Day is a weekday name ("monday", "Tuesday", ...) matched case-insensitively.
type DaySchedule struct {
	Day       string      `bson:"day" json:"day" binding:"required"`
	Available bool        `bson:"available" json:"available"`
	TimeSlots []TimeRange `bson:"timeSlots" json:"timeSlots"`
}

// StylistSchedule is the persisted weekly schedule of a stylist.
type StylistSchedule struct {
	StylistID string        `bson:"stylistId" json:"stylistId"`
	Days      []DaySchedule `bson:"days" json:"days"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// UpdateScheduleRequest is the payload of the schedule settings screen.
type UpdateScheduleRequest struct {
	Days []DaySchedule `json:"days" binding:"required,dive"`
}
