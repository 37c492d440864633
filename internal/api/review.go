package api

import "time"

// CreateReviewRequest rating 必須是 1..5 的整數，text 最長 1000 字。
// swagger:model api.CreateReviewRequest
type CreateReviewRequest struct {
	YelpID string `json:"yelp_id" validate:"required,max=255" example:"north-dumpling-new-york"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5" example:"5"`
	Text   string `json:"text" validate:"required,max=1000" example:"Great dumplings."`
}

// UpdateReviewRequest 兩個欄位都可省略，省略表示不變。
// swagger:model api.UpdateReviewRequest
type UpdateReviewRequest struct {
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5" example:"4"`
	Text   *string `json:"text" validate:"omitempty,max=1000"`
}

// ReviewAuthor 評論作者摘要。
type ReviewAuthor struct {
	ID       int    `json:"id" example:"1"`
	FullName string `json:"full_name" example:"Alice Chen"`
}

// ReviewRestaurant 快取中的餐廳摘要，快取沒有時為空。
type ReviewRestaurant struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Rating  float64 `json:"rating,omitempty"`
	Price   *string `json:"price,omitempty"`
}

// ReviewItem 一筆社群評論。
// swagger:model api.ReviewItem
type ReviewItem struct {
	ID         int               `json:"id" example:"1"`
	YelpID     string            `json:"yelp_id"`
	Rating     int               `json:"rating" example:"5"`
	Text       string            `json:"text"`
	CreatedAt  time.Time         `json:"created_at"`
	User       *ReviewAuthor     `json:"user,omitempty"`
	Restaurant *ReviewRestaurant `json:"restaurant,omitempty"`
}

// ReviewResponse 回應單筆評論操作。
// swagger:model api.ReviewResponse
type ReviewResponse struct {
	Status  string     `json:"status" example:"success"`
	Message string     `json:"message" example:"review created"`
	Review  ReviewItem `json:"review"`
}

// ReviewListResponse 回應評論列表。
// swagger:model api.ReviewListResponse
type ReviewListResponse struct {
	Status  string       `json:"status" example:"success"`
	Total   int          `json:"total" example:"1"`
	Reviews []ReviewItem `json:"reviews"`
}

// ReviewDeleteResponse 回應刪除操作。
// swagger:model api.ReviewDeleteResponse
type ReviewDeleteResponse struct {
	Status   string `json:"status" example:"success"`
	Message  string `json:"message" example:"review deleted"`
	ReviewID int    `json:"review_id" example:"1"`
}
