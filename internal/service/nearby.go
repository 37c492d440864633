package service

import (
	"context"
	"math"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/yelp"
)

const (
	methodNearby  = "yelp_nearby_strict"
	defaultRadius = 5000
)

const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance in meters between two points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// filterWithinRadius keeps only results whose distance from the center is at
// most radius meters. The provider's own distance is trusted when present;
// otherwise the distance is recomputed from coordinates. Results with neither
// are dropped because the radius promise cannot be verified for them.
func filterWithinRadius(items []api.RestaurantSummary, lat, lng float64, radius int) []api.RestaurantSummary {
	kept := items[:0]
	for _, it := range items {
		d := it.Distance
		if d == nil && it.Coordinates != nil {
			computed := Haversine(lat, lng, it.Coordinates.Latitude, it.Coordinates.Longitude)
			d = &computed
		}
		if d == nil || *d > float64(radius) {
			continue
		}
		it.Distance = d
		kept = append(kept, it)
	}
	return kept
}

// Nearby searches around a coordinate and enforces the radius strictly even
// when the provider returns farther results. An empty result is a valid
// answer, not an error.
func Nearby(ctx context.Context, db database.DB, yp yelp.API, req api.NearbyRequest) (*api.NearbyResponse, error) {
	if req.Radius == 0 {
		req.Radius = defaultRadius
	}
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}

	lat := *req.Latitude
	lng := *req.Longitude

	items, err := yp.SearchNearby(ctx, yelp.NearbyParams{
		Latitude:   lat,
		Longitude:  lng,
		Radius:     req.Radius,
		Categories: "restaurants",
		Limit:      req.Limit,
	})
	if err != nil {
		logf("businesses/search 失敗: lat=%f lng=%f radius=%d: %v", lat, lng, req.Radius, err)
		return nil, FromUpstream(err)
	}

	if items == nil {
		items = []api.RestaurantSummary{}
	}
	items = dropUnreviewed(items)
	items = filterWithinRadius(items, lat, lng, req.Radius)

	// 盡力寫回快取，失敗不影響回應。
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		_ = upsertRestaurant(ctx, db, cacheFromSummary(it, writeBackCode))
	}

	return &api.NearbyResponse{
		Status:       "success",
		Method:       methodNearby,
		Total:        len(items),
		RadiusMeters: req.Radius,
		Location:     api.Coordinates{Latitude: lat, Longitude: lng},
		Restaurants:  items,
	}, nil
}
