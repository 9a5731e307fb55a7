package models

import "time"

// Portfolio is a bookable service offering of a stylist.
type Portfolio struct {
	ID       string  `bson:"id" json:"id"`
	Title    string  `bson:"title" json:"title"`
	Service  string  `bson:"service" json:"service"`
	Price    float64 `bson:"price" json:"price"`
	Duration string  `bson:"duration" json:"duration"` // "<N> hour(s)"
	ImageURL string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Stylist is a service provider listed on the marketplace.
type Stylist struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Bio         string      `bson:"bio,omitempty" json:"bio,omitempty"`
	Location    string      `bson:"location" json:"location"`
	Services    []string    `bson:"services" json:"services"`
	Rating      float64     `bson:"rating" json:"rating"`
	ReviewCount int         `bson:"reviewCount" json:"reviewCount"`
	Portfolios  []Portfolio `bson:"portfolios" json:"portfolios"`
	Active      bool        `bson:"active" json:"active"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt,omitzero"`
}

// Portfolio returns the portfolio entry with the given id.
func (s Stylist) Portfolio(id string) (Portfolio, bool) {
	for _, p := range s.Portfolios {
		if p.ID == id {
			return p, true
		}
	}
	return Portfolio{}, false
}

// StylistSearchRequest carries the discovery screen's query and filters.
type StylistSearchRequest struct {
	Query     string  `form:"q"`
	Service   string  `form:"service"`
	Location  string  `form:"location"`
	MinRating float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
	MaxPrice  float64 `form:"maxPrice" binding:"omitempty,min=0"`
	SortBy    string  `form:"sort" binding:"omitempty,oneof=relevance rating price name reviews"`
	Page      int     `form:"page" binding:"omitempty,min=1"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

// StylistSearchResponse is a page of discovery results.
type StylistSearchResponse struct {
	Stylists []Stylist `json:"stylists"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
