package availability

import "stylebook/models"

// IsBlocking reports whether an appointment in this status occupies the stylist's time.
func IsBlocking(status string) bool {
	return status == models.StatusApproved || status == models.StatusConfirmed
}

// HasConflict reports whether [start, start+duration) on date overlaps a blocking appointment.
// Appointments on other dates, in non-blocking statuses, or with an unreadable start time are ignored.
func HasConflict(date string, start, duration int, appointments []models.ExistingAppointment) bool {
	end := start + duration
	for _, appt := range appointments {
		if appt.AppointmentDate != date || !IsBlocking(appt.Status) {
			continue
		}
		apptStart, ok := ParseClock(appt.AppointmentTime)
		if !ok {
			continue
		}
		apptEnd := apptStart + ParseDurationHours(appt.Duration)*60
		if start < apptEnd && end > apptStart {
			return true
		}
	}
	return false
}
