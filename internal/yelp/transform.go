package yelp

import (
	"strings"

	"dinewise/internal/api"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func joinAddress(loc wireLocation) *string {
	parts := make([]string, 0, 3)
	for _, p := range []string{loc.Address1, loc.City, loc.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

func categoryTitles(cats []wireCategory) []string {
	titles := make([]string, 0, len(cats))
	for _, c := range cats {
		titles = append(titles, c.Title)
	}
	return titles
}

func toCoordinates(c *wireCoordinates) *api.Coordinates {
	if c == nil || c.Latitude == nil || c.Longitude == nil {
		return nil
	}
	return &api.Coordinates{Latitude: *c.Latitude, Longitude: *c.Longitude}
}

// 上游缺 is_closed 時視為未營業，與原始資料約定一致。
func openState(isClosed *bool) bool {
	if isClosed == nil {
		return false
	}
	return !*isClosed
}

func toSummary(b wireBusiness) api.RestaurantSummary {
	return api.RestaurantSummary{
		ID:          b.ID,
		Name:        b.Name,
		Rating:      b.Rating,
		Price:       optional(b.Price),
		Categories:  categoryTitles(b.Categories),
		ImageURL:    optional(b.ImageURL),
		Distance:    b.Distance,
		IsOpen:      openState(b.IsClosed),
		ReviewCount: b.ReviewCount,
		Address:     joinAddress(b.Location),
		Phone:       optional(b.DisplayPhone),
		YelpURL:     optional(b.URL),
		Coordinates: toCoordinates(b.Coordinates),
	}
}

func summarize(businesses []wireBusiness) []api.RestaurantSummary {
	out := make([]api.RestaurantSummary, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, toSummary(b))
	}
	return out
}

func toDetail(b wireBusiness) api.RestaurantDetail {
	var hours any
	if len(b.BusinessHours) > 0 {
		hours = b.BusinessHours[0]
	}
	photos := b.Photos
	if photos == nil {
		photos = []string{}
	}
	transactions := b.Transactions
	if transactions == nil {
		transactions = []string{}
	}
	return api.RestaurantDetail{
		ID:           b.ID,
		Name:         b.Name,
		Rating:       b.Rating,
		Price:        optional(b.Price),
		Categories:   categoryTitles(b.Categories),
		ImageURL:     optional(b.ImageURL),
		Photos:       photos,
		IsOpen:       openState(b.IsClosed),
		ReviewCount:  b.ReviewCount,
		Address:      joinAddress(b.Location),
		Phone:        optional(b.DisplayPhone),
		YelpURL:      optional(b.URL),
		Coordinates:  toCoordinates(b.Coordinates),
		Hours:        hours,
		Transactions: transactions,
	}
}

func toReview(r wireReview) api.YelpReview {
	review := api.YelpReview{
		ID:          r.ID,
		Rating:      r.Rating,
		Text:        r.Text,
		TimeCreated: r.TimeCreated,
		URL:         optional(r.URL),
	}
	review.User.Name = r.User.Name
	review.User.ImageURL = optional(r.User.ImageURL)
	return review
}
