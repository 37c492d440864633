package service

import (
	"context"
	"encoding/json"
	"time"

	"dinewise/internal/api"
	"dinewise/internal/cache"
	"dinewise/internal/database"
	"dinewise/internal/model"
	"dinewise/internal/yelp"
)

const maxDetailReviews = 3

func detailCacheKey(yelpID string) string {
	return "restaurant:" + yelpID
}

// mergeCached backfills fields the live payload left empty from the last
// cached snapshot. Live data always wins when both sides have a value.
func mergeCached(d *api.RestaurantDetail, cached *model.CachedRestaurant) {
	if cached == nil {
		return
	}
	if d.Price == nil {
		d.Price = cached.Price
	}
	if d.Phone == nil {
		d.Phone = cached.Phone
	}
	if d.Address == nil {
		d.Address = cached.Address
	}
	if len(d.Categories) == 0 {
		d.Categories = cached.Categories
	}
	if d.Coordinates == nil && (cached.Lat != 0 || cached.Lng != 0) {
		d.Coordinates = &api.Coordinates{Latitude: cached.Lat, Longitude: cached.Lng}
	}
}

func cacheFromDetail(d *api.RestaurantDetail) *model.CachedRestaurant {
	r := &model.CachedRestaurant{
		YelpID:       d.ID,
		Name:         d.Name,
		LocationCode: writeBackCode,
		Price:        d.Price,
		Rating:       d.Rating,
		ReviewCount:  d.ReviewCount,
		Categories:   d.Categories,
		Phone:        d.Phone,
		Address:      d.Address,
	}
	if d.Coordinates != nil {
		r.Lat = d.Coordinates.Latitude
		r.Lng = d.Coordinates.Longitude
	}
	return r
}

// Detail fetches one restaurant live, merges the cached snapshot into gaps,
// and attaches up to three provider reviews. The live fetch is mandatory;
// the cache never substitutes for a failed fetch. Whole responses are held in
// Redis for a short TTL to absorb repeat views.
func Detail(ctx context.Context, db database.DB, rdb cache.Cache, yp yelp.API, yelpID string, ttl time.Duration) (*api.RestaurantDetailResponse, error) {
	if rdb != nil {
		if raw, err := rdb.Get(ctx, detailCacheKey(yelpID)).Bytes(); err == nil {
			resp := &api.RestaurantDetailResponse{}
			if err := json.Unmarshal(raw, resp); err == nil {
				return resp, nil
			}
			// 快取內容壞掉就先清掉，改走即時查詢。
			_ = rdb.Del(ctx, detailCacheKey(yelpID)).Err()
		}
	}

	detail, err := yp.GetBusiness(ctx, yelpID)
	if err != nil {
		logf("businesses/{id} 失敗: yelp_id=%q: %v", yelpID, err)
		return nil, FromUpstream(err)
	}

	cached, err := getRestaurantByYelpID(ctx, db, yelpID)
	if err == nil {
		mergeCached(detail, cached)
	}

	// 評論抓取失敗不影響主回應。
	reviews, err := yp.GetReviews(ctx, yelpID)
	if err != nil {
		logf("businesses/{id}/reviews 失敗: yelp_id=%q: %v", yelpID, err)
	}
	if err != nil || reviews == nil {
		reviews = []api.YelpReview{}
	}
	if len(reviews) > maxDetailReviews {
		reviews = reviews[:maxDetailReviews]
	}

	_ = upsertRestaurant(ctx, db, cacheFromDetail(detail))

	resp := &api.RestaurantDetailResponse{
		Status:      "success",
		Source:      methodLive,
		Restaurant:  detail,
		YelpReviews: reviews,
	}

	if rdb != nil && ttl > 0 {
		if raw, err := json.Marshal(resp); err == nil {
			_ = rdb.Set(ctx, detailCacheKey(yelpID), raw, ttl).Err()
		}
	}

	return resp, nil
}

// Reviews returns up to three provider reviews for one restaurant.
func Reviews(ctx context.Context, yp yelp.API, yelpID string) (*api.YelpReviewsResponse, error) {
	reviews, err := yp.GetReviews(ctx, yelpID)
	if err != nil {
		logf("businesses/{id}/reviews 失敗: yelp_id=%q: %v", yelpID, err)
		return nil, FromUpstream(err)
	}
	if reviews == nil {
		reviews = []api.YelpReview{}
	}
	if len(reviews) > maxDetailReviews {
		reviews = reviews[:maxDetailReviews]
	}
	return &api.YelpReviewsResponse{
		Status:  "success",
		YelpID:  yelpID,
		Reviews: reviews,
		Total:   len(reviews),
	}, nil
}
