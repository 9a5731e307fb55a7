package search

import (
	"math"
	"testing"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []models.Stylist {
	return []models.Stylist{
		{
			ID: "s1", Name: "Amara Braids", Location: "Nairobi West", Services: []string{"Braiding"},
			Rating: 4.8, ReviewCount: 120,
			Portfolios: []models.Portfolio{{ID: "p1", Title: "Knotless braids", Service: "Braiding", Price: 60, Duration: "4 hours"}},
		},
		{
			ID: "s2", Name: "Bea Cuts", Location: "Westlands", Services: []string{"Haircut", "Colour"},
			Rating: 4.2, ReviewCount: 300,
			Portfolios: []models.Portfolio{
				{ID: "p2", Title: "Fade", Service: "Haircut", Price: 15, Duration: "1 hour"},
				{ID: "p3", Title: "Balayage", Service: "Colour", Price: 90, Duration: "3 hours"},
			},
		},
		{
			ID: "s3", Name: "chioma nails", Location: "Kilimani", Services: []string{"Nails"},
			Rating: 4.5, ReviewCount: 45,
		},
	}
}

func ids(stylists []models.Stylist) []string {
	out := make([]string, 0, len(stylists))
	for _, s := range stylists {
		out = append(out, s.ID)
	}
	return out
}

func TestApply_QueryMatchesAcrossFields(t *testing.T) {
	tests := map[string][]string{
		"braid":    {"s1"},
		"BALAYAGE": {"s2"},
		"west":     {"s1", "s2"},
		"nails":    {"s3"},
		"":         {"s1", "s2", "s3"},
		"massage":  {},
	}
	for q, want := range tests {
		t.Run(q, func(t *testing.T) {
			res := Apply(fixtures(), models.StylistSearchRequest{Query: q})
			assert.Equal(t, want, ids(res.Stylists))
			assert.Equal(t, len(want), res.Total)
		})
	}
}

func TestApply_Filters(t *testing.T) {
	res := Apply(fixtures(), models.StylistSearchRequest{Service: "colour"})
	assert.Equal(t, []string{"s2"}, ids(res.Stylists))

	res = Apply(fixtures(), models.StylistSearchRequest{MinRating: 4.5})
	assert.Equal(t, []string{"s1", "s3"}, ids(res.Stylists))

	// s3 has no priced portfolio and is excluded by a price ceiling.
	res = Apply(fixtures(), models.StylistSearchRequest{MaxPrice: 20})
	assert.Equal(t, []string{"s2"}, ids(res.Stylists))

	res = Apply(fixtures(), models.StylistSearchRequest{Location: "kilimani"})
	assert.Equal(t, []string{"s3"}, ids(res.Stylists))
}

func TestApply_Sorting(t *testing.T) {
	tests := []struct {
		sort string
		want []string
	}{
		{SortRelevance, []string{"s1", "s2", "s3"}},
		{SortRating, []string{"s1", "s3", "s2"}},
		{SortReviews, []string{"s2", "s1", "s3"}},
		{SortName, []string{"s1", "s2", "s3"}},
		{SortPrice, []string{"s2", "s1", "s3"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			res := Apply(fixtures(), models.StylistSearchRequest{SortBy: tt.sort})
			assert.Equal(t, tt.want, ids(res.Stylists))
		})
	}
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	in := fixtures()
	Apply(in, models.StylistSearchRequest{SortBy: SortRating})
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(in))
}

func TestApply_Pagination(t *testing.T) {
	res := Apply(fixtures(), models.StylistSearchRequest{Page: 2, Limit: 2})
	require.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"s3"}, ids(res.Stylists))
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 2, res.Limit)

	res = Apply(fixtures(), models.StylistSearchRequest{Page: 5, Limit: 2})
	assert.Empty(t, res.Stylists)
	assert.Equal(t, 3, res.Total)

	assert.NotPanics(t, func() {
		res = Apply(fixtures(), models.StylistSearchRequest{Page: math.MaxInt64/20 + 2, Limit: 20})
	})
	assert.Empty(t, res.Stylists)
	assert.Equal(t, 3, res.Total)

	res = Apply(fixtures(), models.StylistSearchRequest{Limit: 1000})
	assert.Equal(t, MaxLimit, res.Limit)

	res = Apply(fixtures(), models.StylistSearchRequest{})
	assert.Equal(t, DefaultLimit, res.Limit)
	assert.Equal(t, 1, res.Page)
}
