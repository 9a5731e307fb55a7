package booking

import "stylebook/models"

var transitions = map[string][]string{
	models.StatusPending:   {models.StatusApproved, models.StatusDeclined, models.StatusCancelled},
	models.StatusApproved:  {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether an appointment may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// canSetStatus applies the per-role rules on top of the transition table.
// Customers may only cancel; stylists manage their own appointments.
func canSetStatus(actor Actor, appt models.Appointment, to string) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleStylist:
		return appt.StylistID == actor.ID
	case RoleCustomer:
		return appt.CustomerID == actor.ID && to == models.StatusCancelled
	}
	return false
}

func canView(actor Actor, appt models.Appointment) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleStylist:
		return appt.StylistID == actor.ID
	case RoleCustomer:
		return appt.CustomerID == actor.ID
	}
	return false
}
