// Package search filters, orders and pages stylist listings for the discovery screen.
package search

import (
	"math"
	"sort"
	"strings"

	"stylebook/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Sort keys accepted by Apply.
const (
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortPrice     = "price"
	SortName      = "name"
	SortReviews   = "reviews"
)

// Apply runs the discovery query over stylists. The input slice is not modified.
func Apply(stylists []models.Stylist, req models.StylistSearchRequest) models.StylistSearchResponse {
	matched := make([]models.Stylist, 0, len(stylists))
	for _, s := range stylists {
		if Matches(s, req) {
			matched = append(matched, s)
		}
	}

	sortStylists(matched, req.SortBy)

	page, limit := normalizePage(req.Page, req.Limit)
	total := len(matched)
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + limit
	if end > total {
		end = total
	}

	return models.StylistSearchResponse{
		Stylists: matched[start:end],
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}

// Matches reports whether a stylist passes every filter in req.
func Matches(s models.Stylist, req models.StylistSearchRequest) bool {
	if q := normalize(req.Query); q != "" && !matchesQuery(s, q) {
		return false
	}
	if svc := normalize(req.Service); svc != "" && !offersService(s, svc) {
		return false
	}
	if loc := normalize(req.Location); loc != "" && !strings.Contains(normalize(s.Location), loc) {
		return false
	}
	if req.MinRating > 0 && s.Rating < req.MinRating {
		return false
	}
	if req.MaxPrice > 0 {
		price, ok := CheapestPrice(s)
		if !ok || price > req.MaxPrice {
			return false
		}
	}
	return true
}

// CheapestPrice returns the lowest portfolio price of a stylist.
func CheapestPrice(s models.Stylist) (float64, bool) {
	if len(s.Portfolios) == 0 {
		return 0, false
	}
	lowest := math.Inf(1)
	for _, p := range s.Portfolios {
		lowest = math.Min(lowest, p.Price)
	}
	return lowest, true
}

func matchesQuery(s models.Stylist, q string) bool {
	fields := []string{s.Name, s.Bio, s.Location}
	fields = append(fields, s.Services...)
	for _, p := range s.Portfolios {
		fields = append(fields, p.Title, p.Service)
	}
	for _, f := range fields {
		if strings.Contains(normalize(f), q) {
			return true
		}
	}
	return false
}

func offersService(s models.Stylist, svc string) bool {
	for _, name := range s.Services {
		if strings.Contains(normalize(name), svc) {
			return true
		}
	}
	for _, p := range s.Portfolios {
		if strings.Contains(normalize(p.Service), svc) {
			return true
		}
	}
	return false
}

func sortStylists(stylists []models.Stylist, by string) {
	var less func(a, b models.Stylist) bool
	switch by {
	case SortRating:
		less = func(a, b models.Stylist) bool { return a.Rating > b.Rating }
	case SortReviews:
		less = func(a, b models.Stylist) bool { return a.ReviewCount > b.ReviewCount }
	case SortName:
		less = func(a, b models.Stylist) bool { return normalize(a.Name) < normalize(b.Name) }
	case SortPrice:
		// Stylists without a priced portfolio go last.
		less = func(a, b models.Stylist) bool {
			pa, okA := CheapestPrice(a)
			pb, okB := CheapestPrice(b)
			if okA != okB {
				return okA
			}
			return pa < pb
		}
	default:
		return
	}
	sort.SliceStable(stylists, func(i, j int) bool { return less(stylists[i], stylists[j]) })
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
