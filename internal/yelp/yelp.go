package yelp

import (
	"context"
	"fmt"

	"dinewise/internal/api"
)

// Machine-readable error codes carried by APIError.
const (
	ErrCodeRateLimited    = "rate_limited"
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeUpstream       = "upstream_error"
)

// APIError is the typed failure every client call returns on a non-200
// upstream answer or a network fault. StatusCode is the upstream HTTP status,
// 0 when the request never completed.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yelp: %s (status=%d, code=%s)", e.Message, e.StatusCode, e.Code)
}

// SearchParams are the knobs of the upstream business search.
type SearchParams struct {
	Term     string
	Location string
	Price    string // upstream tiers, comma separated: "1,2"
	Limit    int
	Offset   int
}

// NearbyParams are the knobs of the radius search around a center point.
type NearbyParams struct {
	Latitude   float64
	Longitude  float64
	Radius     int
	Categories string
	Limit      int
}

// API is what the routing layer consumes; *Client implements it.
type API interface {
	SearchBusinesses(ctx context.Context, p SearchParams) ([]api.RestaurantSummary, error)
	SearchNearby(ctx context.Context, p NearbyParams) ([]api.RestaurantSummary, error)
	GetBusiness(ctx context.Context, yelpID string) (*api.RestaurantDetail, error)
	GetReviews(ctx context.Context, yelpID string) ([]api.YelpReview, error)
}

type FakeAPI struct {
	SearchBusinessesFn func(ctx context.Context, p SearchParams) ([]api.RestaurantSummary, error)
	SearchNearbyFn     func(ctx context.Context, p NearbyParams) ([]api.RestaurantSummary, error)
	GetBusinessFn      func(ctx context.Context, yelpID string) (*api.RestaurantDetail, error)
	GetReviewsFn       func(ctx context.Context, yelpID string) ([]api.YelpReview, error)
}

func (f *FakeAPI) SearchBusinesses(ctx context.Context, p SearchParams) ([]api.RestaurantSummary, error) {
	if f.SearchBusinessesFn != nil {
		return f.SearchBusinessesFn(ctx, p)
	}
	panic("unexpected SearchBusinesses")
}

func (f *FakeAPI) SearchNearby(ctx context.Context, p NearbyParams) ([]api.RestaurantSummary, error) {
	if f.SearchNearbyFn != nil {
		return f.SearchNearbyFn(ctx, p)
	}
	panic("unexpected SearchNearby")
}

func (f *FakeAPI) GetBusiness(ctx context.Context, yelpID string) (*api.RestaurantDetail, error) {
	if f.GetBusinessFn != nil {
		return f.GetBusinessFn(ctx, yelpID)
	}
	panic("unexpected GetBusiness")
}

func (f *FakeAPI) GetReviews(ctx context.Context, yelpID string) ([]api.YelpReview, error) {
	if f.GetReviewsFn != nil {
		return f.GetReviewsFn(ctx, yelpID)
	}
	panic("unexpected GetReviews")
}
