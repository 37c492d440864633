package model

import "time"

// WishlistEntry 每位使用者對同一家餐廳僅有一筆 (user_id, yelp_id)。
type WishlistEntry struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"-"`
	YelpID    string    `db:"yelp_id" json:"yelp_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
