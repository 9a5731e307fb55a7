package stylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "stylebook/database/repository/schedule"
	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"
	"stylebook/services/search"
	"stylebook/utils"

	"go.uber.org/zap"
)

// StylistService serves the stylist profile, schedule settings and discovery screens.
type StylistService interface {
	GetStylist(ctx context.Context, id string) (*models.Stylist, error)
	GetPortfolio(ctx context.Context, stylistID, portfolioID string) (*models.Portfolio, error)
	GetSchedule(ctx context.Context, stylistID string) (*models.StylistSchedule, error)
	UpdateSchedule(ctx context.Context, actorID, stylistID string, req models.UpdateScheduleRequest) (*models.StylistSchedule, error)
	Search(ctx context.Context, req models.StylistSearchRequest) (*models.StylistSearchResponse, error)
}

// DefaultStylistService is the production implementation.
type DefaultStylistService struct {
	Repo      stylistRepo.StylistRepository
	Schedules scheduleRepo.ScheduleRepository
	Logger    *zap.Logger
}

func NewDefaultStylistService(repo stylistRepo.StylistRepository, schedules scheduleRepo.ScheduleRepository, logger *zap.Logger) (*DefaultStylistService, error) {
	if repo == nil || schedules == nil {
		return nil, fmt.Errorf("stylist service initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &DefaultStylistService{Repo: repo, Schedules: schedules, Logger: logger}, nil
}

func (s *DefaultStylistService) GetStylist(ctx context.Context, id string) (*models.Stylist, error) {
	stylist, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, stylistRepo.ErrNotFound) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stylist: %w", err)
	}
	return stylist, nil
}

func (s *DefaultStylistService) GetPortfolio(ctx context.Context, stylistID, portfolioID string) (*models.Portfolio, error) {
	stylist, err := s.GetStylist(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	portfolio, ok := stylist.Portfolio(portfolioID)
	if !ok {
		return nil, ErrPortfolioNotFound
	}
	return &portfolio, nil
}

// GetSchedule returns the stored weekly schedule. A stylist who never saved one gets an
// empty schedule, which offers no times.
func (s *DefaultStylistService) GetSchedule(ctx context.Context, stylistID string) (*models.StylistSchedule, error) {
	if _, err := s.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}
	schedule, err := s.Schedules.GetByStylistID(ctx, stylistID)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return &models.StylistSchedule{StylistID: stylistID, Days: []models.DaySchedule{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return schedule, nil
}

// UpdateSchedule validates and replaces the stylist's weekly schedule.
func (s *DefaultStylistService) UpdateSchedule(ctx context.Context, actorID, stylistID string, req models.UpdateScheduleRequest) (*models.StylistSchedule, error) {
	if actorID != stylistID {
		return nil, ErrForbidden
	}
	if _, err := s.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}
	days, err := ValidateSchedule(req.Days)
	if err != nil {
		return nil, err
	}

	schedule := &models.StylistSchedule{
		StylistID: stylistID,
		Days:      days,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Schedules.Upsert(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	s.Logger.Info("stylist schedule updated", zap.String("stylistID", stylistID), zap.Int("days", len(days)))
	return schedule, nil
}

// Search loads active stylists narrowed by the indexed criteria, then filters, sorts and
// pages them in memory.
func (s *DefaultStylistService) Search(ctx context.Context, req models.StylistSearchRequest) (*models.StylistSearchResponse, error) {
	stylists, err := s.Repo.ListActive(ctx, stylistRepo.StylistSearchCriteria{
		Service:   req.Service,
		Location:  req.Location,
		MinRating: req.MinRating,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search stylists: %w", err)
	}
	res := search.Apply(stylists, req)
	return &res, nil
}
