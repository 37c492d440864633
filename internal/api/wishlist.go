package api

import "time"

// AddWishlistRequest 將餐廳加入願望清單。
// swagger:model api.AddWishlistRequest
type AddWishlistRequest struct {
	YelpID string `json:"yelp_id" validate:"required,max=255" example:"north-dumpling-new-york"`
}

// WishlistItem 一筆願望清單項目，附帶快取中的餐廳資料（可能為空）。
// swagger:model api.WishlistItem
type WishlistItem struct {
	ID         int                `json:"id" example:"1"`
	YelpID     string             `json:"yelp_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Restaurant *RestaurantSummary `json:"restaurant,omitempty"`
}

// WishlistItemResponse 回應新增操作。
// swagger:model api.WishlistItemResponse
type WishlistItemResponse struct {
	Status       string       `json:"status" example:"success"`
	Message      string       `json:"message" example:"restaurant added to wishlist"`
	WishlistItem WishlistItem `json:"wishlist_item"`
}

// WishlistListResponse 回應清單查詢。
// swagger:model api.WishlistListResponse
type WishlistListResponse struct {
	Status   string         `json:"status" example:"success"`
	Total    int            `json:"total" example:"1"`
	Wishlist []WishlistItem `json:"wishlist"`
}

// WishlistCheckResponse 回應會員狀態查詢。
// swagger:model api.WishlistCheckResponse
type WishlistCheckResponse struct {
	YelpID     string `json:"yelp_id"`
	InWishlist bool   `json:"in_wishlist" example:"true"`
}

// WishlistDeleteResponse 回應刪除操作。
// swagger:model api.WishlistDeleteResponse
type WishlistDeleteResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"restaurant removed from wishlist"`
	YelpID  string `json:"yelp_id"`
}
