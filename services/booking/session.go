package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "booking:session:"

// SessionStore keeps booking sessions between screen steps.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores sessions as JSON under an expiring key.
type RedisSessionStore struct {
	Client *redis.Client
}

func (r *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := r.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// StartSession opens a booking draft for a stylist.
func (s *DefaultBookingService) StartSession(ctx context.Context, customerID string, req models.StartSessionRequest) (*models.BookingSession, error) {
	stylist, err := s.loadStylist(ctx, req.StylistID)
	if err != nil {
		return nil, err
	}
	if !stylist.Active {
		return nil, ErrStylistInactive
	}
	if req.PortfolioID != "" {
		if _, ok := stylist.Portfolio(req.PortfolioID); !ok {
			return nil, ErrPortfolioNotFound
		}
	}

	session := &models.BookingSession{
		SessionID:   uuid.New().String(),
		CustomerID:  customerID,
		StylistID:   req.StylistID,
		PortfolioID: req.PortfolioID,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Sessions.Save(ctx, session, s.sessionTTL()); err != nil {
		return nil, err
	}
	s.logger().Debug("booking session started",
		zap.String("sessionID", session.SessionID), zap.String("stylistID", session.StylistID))
	return session, nil
}

func (s *DefaultBookingService) GetSession(ctx context.Context, customerID, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CustomerID != customerID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// UpdateSession applies new selections. Changing the portfolio or date recomputes the
// offered times and clears a time that is no longer offered.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, customerID, sessionID string, req models.UpdateSessionRequest) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, customerID, sessionID)
	if err != nil {
		return nil, err
	}

	recompute := false
	if req.PortfolioID != "" && req.PortfolioID != session.PortfolioID {
		if _, _, err := s.loadPortfolio(ctx, session.StylistID, req.PortfolioID); err != nil {
			return nil, err
		}
		session.PortfolioID = req.PortfolioID
		recompute = true
	}
	if req.Date != "" && req.Date != session.Date {
		if _, err := parseDate(req.Date); err != nil {
			return nil, err
		}
		session.Date = req.Date
		recompute = true
	}
	if req.Notes != "" {
		session.Notes = req.Notes
	}

	if recompute && session.PortfolioID != "" && session.Date != "" {
		res, err := s.GetAvailableTimes(ctx, session.StylistID, session.PortfolioID, session.Date)
		if err != nil {
			return nil, err
		}
		session.AvailableTimes = res.Times
		if session.Time != "" && !containsTime(session.AvailableTimes, session.Time) {
			session.Time = ""
		}
	}

	if req.Time != "" {
		if !containsTime(session.AvailableTimes, req.Time) {
			return nil, ErrSlotUnavailable
		}
		session.Time = req.Time
	}

	if err := s.Sessions.Save(ctx, session, s.sessionTTL()); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession books the session's selection and closes the session.
func (s *DefaultBookingService) ConfirmSession(ctx context.Context, customerID, sessionID string) (*models.Appointment, error) {
	session, err := s.GetSession(ctx, customerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.PortfolioID == "" || session.Date == "" || session.Time == "" {
		return nil, ErrSessionIncomplete
	}

	appt, err := s.BookAppointment(ctx, customerID, models.BookAppointmentRequest{
		StylistID:   session.StylistID,
		PortfolioID: session.PortfolioID,
		Date:        session.Date,
		Time:        session.Time,
		Notes:       session.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.logger().Warn("failed to delete confirmed booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return appt, nil
}

func (s *DefaultBookingService) CancelSession(ctx context.Context, customerID, sessionID string) error {
	if _, err := s.GetSession(ctx, customerID, sessionID); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultBookingService) loadStylist(ctx context.Context, stylistID string) (*models.Stylist, error) {
	stylist, err := s.Stylists.GetByID(ctx, stylistID)
	if errors.Is(err, stylistRepo.ErrNotFound) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stylist: %w", err)
	}
	return stylist, nil
}
