package booking

import (
	"context"
	"time"

	appointmentRepo "stylebook/database/repository/appointment"
	scheduleRepo "stylebook/database/repository/schedule"
	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"
	"stylebook/services/availability"
	"stylebook/services/events"
	"stylebook/services/tasks"
	"stylebook/utils"

	"go.uber.org/zap"
)

// Roles carried by authenticated callers.
const (
	RoleCustomer = "customer"
	RoleStylist  = "stylist"
	RoleAdmin    = "admin"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   string
	Role string
}

// BookingService backs the booking, appointment viewing and booking session screens.
type BookingService interface {
	GetAvailableTimes(ctx context.Context, stylistID, portfolioID, date string) (*models.AvailableTimesResponse, error)
	BookAppointment(ctx context.Context, customerID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	ViewAppointment(ctx context.Context, actor Actor, appointmentID, date string) (*models.AppointmentView, error)
	Reschedule(ctx context.Context, actor Actor, appointmentID string, req models.RescheduleRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, actor Actor, appointmentID, status string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, actor Actor, statuses []string) ([]models.Appointment, error)
	ApplyScheduledTransition(ctx context.Context, payload models.AppointmentTaskPayload) error

	StartSession(ctx context.Context, customerID string, req models.StartSessionRequest) (*models.BookingSession, error)
	GetSession(ctx context.Context, customerID, sessionID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, customerID, sessionID string, req models.UpdateSessionRequest) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, customerID, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, customerID, sessionID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Stylists     stylistRepo.StylistRepository
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Sessions     SessionStore
	Tasks        tasks.Scheduler
	Events       events.Publisher
	Options      availability.Options
	SessionTTL   time.Duration
	Logger       *zap.Logger
	Now          func() time.Time
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return 15 * time.Minute
	}
	return s.SessionTTL
}
