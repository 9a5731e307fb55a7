package booking

import (
	"context"
	"sync"
	"time"

	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"

	"github.com/stretchr/testify/mock"
)

type mockStylistRepo struct{ mock.Mock }

func (m *mockStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	args := m.Called(ctx, id)
	stylist, _ := args.Get(0).(*models.Stylist)
	return stylist, args.Error(1)
}

func (m *mockStylistRepo) ListActive(ctx context.Context, criteria stylistRepo.StylistSearchCriteria) ([]models.Stylist, error) {
	args := m.Called(ctx, criteria)
	stylists, _ := args.Get(0).([]models.Stylist)
	return stylists, args.Error(1)
}

func (m *mockStylistRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) GetByStylistID(ctx context.Context, stylistID string) (*models.StylistSchedule, error) {
	args := m.Called(ctx, stylistID)
	schedule, _ := args.Get(0).(*models.StylistSchedule)
	return schedule, args.Error(1)
}

func (m *mockScheduleRepo) Upsert(ctx context.Context, schedule *models.StylistSchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *mockScheduleRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockAppointmentRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, filter)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) ListByStylistAndDate(ctx context.Context, stylistID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, stylistID, date)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) Reschedule(ctx context.Context, id, date, clock string) error {
	return m.Called(ctx, id, date, clock).Error(0)
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *mockAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// recordingScheduler remembers which tasks were queued.
type recordingScheduler struct {
	mu          sync.Mutex
	expiries    []string
	completions []string
}

func (r *recordingScheduler) ScheduleExpiry(_ context.Context, appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expiries = append(r.expiries, appt.ID)
	return nil
}

func (r *recordingScheduler) ScheduleCompletion(_ context.Context, appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = append(r.completions, appt.ID)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.AppointmentEvent
}

func (r *recordingPublisher) Publish(_ context.Context, event models.AppointmentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memorySessionStore) Save(_ context.Context, session *models.BookingSession, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = *session
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
