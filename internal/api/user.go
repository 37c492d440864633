package api

import "time"

// UserResponse 當前使用者資料。
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	FullName  string    `json:"full_name" example:"Alice Chen"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
