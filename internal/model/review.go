package model

import "time"

// Review is a community review; mutable and deletable only by its author.
type Review struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"-"`
	YelpID    string    `db:"yelp_id" json:"yelp_id"`
	Rating    int       `db:"rating" json:"rating"`
	Text      string    `db:"review_text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
