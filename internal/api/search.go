package api

// SearchRequest 綁定 GET /search 的查詢參數。
// swagger:model api.SearchRequest
type SearchRequest struct {
	Query     string   `query:"q" validate:"omitempty,max=255" example:"pizza"`
	Location  string   `query:"location" validate:"omitempty,max=255" example:"MAN"`
	Cuisine   string   `query:"cuisine" validate:"omitempty,max=100" example:"italian"`
	Price     string   `query:"price" validate:"omitempty,max=20" example:"$,$$"`
	RatingMin *float64 `query:"rating_min" validate:"omitempty,gte=1,lte=5" example:"4.0"`
	Limit     int      `query:"limit" validate:"omitempty,gte=1,lte=50" example:"20"`
	Offset    int      `query:"offset" validate:"omitempty,gte=0" example:"0"`
}

// SearchResponse 的 method 欄位標示結果來源 (cached_db / yelp_api)。
// swagger:model api.SearchResponse
type SearchResponse struct {
	Status      string              `json:"status" example:"success"`
	Method      string              `json:"method" example:"cached_db"`
	Total       int                 `json:"total" example:"2"`
	Limit       int                 `json:"limit" example:"20"`
	Offset      int                 `json:"offset" example:"0"`
	Restaurants []RestaurantSummary `json:"restaurants"`
}

// NearbyRequest 綁定 GET /search/nearby 的查詢參數。
// swagger:model api.NearbyRequest
type NearbyRequest struct {
	Latitude  *float64 `query:"latitude" validate:"required,gte=-90,lte=90" example:"40.7580"`
	Longitude *float64 `query:"longitude" validate:"required,gte=-180,lte=180" example:"-73.9855"`
	Radius    int      `query:"radius" validate:"omitempty,gte=100,lte=40000" example:"1000"`
	Limit     int      `query:"limit" validate:"omitempty,gte=1,lte=50" example:"20"`
}

// NearbyResponse echoes the requested radius and center so the caller can
// verify the strict filter.
// swagger:model api.NearbyResponse
type NearbyResponse struct {
	Status       string              `json:"status" example:"success"`
	Method       string              `json:"method" example:"yelp_nearby_strict"`
	Total        int                 `json:"total" example:"2"`
	RadiusMeters int                 `json:"radius_meters" example:"1000"`
	Location     Coordinates         `json:"location"`
	Restaurants  []RestaurantSummary `json:"restaurants"`
}

// RestaurantDetailResponse 回應 GET /restaurants/{yelp_id}。
// swagger:model api.RestaurantDetailResponse
type RestaurantDetailResponse struct {
	Status      string            `json:"status" example:"success"`
	Source      string            `json:"source" example:"yelp_api"`
	Restaurant  *RestaurantDetail `json:"restaurant"`
	YelpReviews []YelpReview      `json:"yelp_reviews"`
}

// YelpReviewsResponse 回應 GET /restaurants/{yelp_id}/reviews。
// swagger:model api.YelpReviewsResponse
type YelpReviewsResponse struct {
	Status  string       `json:"status" example:"success"`
	YelpID  string       `json:"yelp_id"`
	Reviews []YelpReview `json:"reviews"`
	Total   int          `json:"total" example:"3"`
}
