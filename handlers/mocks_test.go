package handlers

import (
	"context"

	"stylebook/models"
	"stylebook/services/booking"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) GetAvailableTimes(ctx context.Context, stylistID, portfolioID, date string) (*models.AvailableTimesResponse, error) {
	args := m.Called(ctx, stylistID, portfolioID, date)
	res, _ := args.Get(0).(*models.AvailableTimesResponse)
	return res, args.Error(1)
}

func (m *mockBookingService) BookAppointment(ctx context.Context, customerID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, customerID, req)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockBookingService) ViewAppointment(ctx context.Context, actor booking.Actor, appointmentID, date string) (*models.AppointmentView, error) {
	args := m.Called(ctx, actor, appointmentID, date)
	view, _ := args.Get(0).(*models.AppointmentView)
	return view, args.Error(1)
}

func (m *mockBookingService) Reschedule(ctx context.Context, actor booking.Actor, appointmentID string, req models.RescheduleRequest) (*models.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID, req)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, actor booking.Actor, appointmentID, status string) (*models.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID, status)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockBookingService) ListAppointments(ctx context.Context, actor booking.Actor, statuses []string) ([]models.Appointment, error) {
	args := m.Called(ctx, actor, statuses)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockBookingService) ApplyScheduledTransition(ctx context.Context, payload models.AppointmentTaskPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *mockBookingService) StartSession(ctx context.Context, customerID string, req models.StartSessionRequest) (*models.BookingSession, error) {
	args := m.Called(ctx, customerID, req)
	session, _ := args.Get(0).(*models.BookingSession)
	return session, args.Error(1)
}

func (m *mockBookingService) GetSession(ctx context.Context, customerID, sessionID string) (*models.BookingSession, error) {
	args := m.Called(ctx, customerID, sessionID)
	session, _ := args.Get(0).(*models.BookingSession)
	return session, args.Error(1)
}

func (m *mockBookingService) UpdateSession(ctx context.Context, customerID, sessionID string, req models.UpdateSessionRequest) (*models.BookingSession, error) {
	args := m.Called(ctx, customerID, sessionID, req)
	session, _ := args.Get(0).(*models.BookingSession)
	return session, args.Error(1)
}

func (m *mockBookingService) ConfirmSession(ctx context.Context, customerID, sessionID string) (*models.Appointment, error) {
	args := m.Called(ctx, customerID, sessionID)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockBookingService) CancelSession(ctx context.Context, customerID, sessionID string) error {
	return m.Called(ctx, customerID, sessionID).Error(0)
}

type mockStylistService struct{ mock.Mock }

func (m *mockStylistService) GetStylist(ctx context.Context, id string) (*models.Stylist, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Stylist)
	return s, args.Error(1)
}

func (m *mockStylistService) GetPortfolio(ctx context.Context, stylistID, portfolioID string) (*models.Portfolio, error) {
	args := m.Called(ctx, stylistID, portfolioID)
	p, _ := args.Get(0).(*models.Portfolio)
	return p, args.Error(1)
}

func (m *mockStylistService) GetSchedule(ctx context.Context, stylistID string) (*models.StylistSchedule, error) {
	args := m.Called(ctx, stylistID)
	s, _ := args.Get(0).(*models.StylistSchedule)
	return s, args.Error(1)
}

func (m *mockStylistService) UpdateSchedule(ctx context.Context, actorID, stylistID string, req models.UpdateScheduleRequest) (*models.StylistSchedule, error) {
	args := m.Called(ctx, actorID, stylistID, req)
	s, _ := args.Get(0).(*models.StylistSchedule)
	return s, args.Error(1)
}

func (m *mockStylistService) Search(ctx context.Context, req models.StylistSearchRequest) (*models.StylistSearchResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.StylistSearchResponse)
	return res, args.Error(1)
}
