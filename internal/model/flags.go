package model

import "time"

// RestaurantFlags carries the per-user visited / promo booleans for one
// restaurant. Upserted as a whole record on each write.
type RestaurantFlags struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"-"`
	YelpID     string    `db:"yelp_id" json:"yelp_id"`
	Visited    bool      `db:"visited" json:"visited"`
	PromoOptIn bool      `db:"promo_opt_in" json:"promo_opt_in"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
