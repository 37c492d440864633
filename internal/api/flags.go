package api

import "time"

// UpdateFlagsRequest 允許部分更新：省略的欄位維持原值，首次建立時預設 false。
// swagger:model api.UpdateFlagsRequest
type UpdateFlagsRequest struct {
	Visited    *bool `json:"visited" example:"true"`
	PromoOptIn *bool `json:"promo_opt_in" example:"false"`
}

// FlagsItem 一筆旗標記錄。
// swagger:model api.FlagsItem
type FlagsItem struct {
	ID         int               `json:"id,omitempty" example:"1"`
	YelpID     string            `json:"yelp_id"`
	Visited    bool              `json:"visited" example:"true"`
	PromoOptIn bool              `json:"promo_opt_in" example:"false"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
	Exists     *bool             `json:"exists,omitempty" example:"false"`
	Restaurant *ReviewRestaurant `json:"restaurant,omitempty"`
}

// FlagsResponse 回應單筆旗標操作。
// swagger:model api.FlagsResponse
type FlagsResponse struct {
	Status  string    `json:"status" example:"success"`
	Message string    `json:"message,omitempty" example:"flags updated"`
	Flags   FlagsItem `json:"flags"`
}

// FlagsListResponse 回應旗標列表。
// swagger:model api.FlagsListResponse
type FlagsListResponse struct {
	Status string      `json:"status" example:"success"`
	Total  int         `json:"total" example:"1"`
	Flags  []FlagsItem `json:"flags"`
}

// FlagsDeleteResponse 回應刪除操作。
// swagger:model api.FlagsDeleteResponse
type FlagsDeleteResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"flags deleted"`
	YelpID  string `json:"yelp_id"`
}
