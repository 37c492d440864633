package model

import "time"

// CachedRestaurant is one row of the local restaurant cache. Rows are written
// by the borough seeder and by search/detail write-backs, never by user action.
type CachedRestaurant struct {
	ID            int       `db:"id" json:"id"`
	YelpID        string    `db:"yelp_id" json:"yelp_id"`
	Name          string    `db:"name" json:"name"`
	LocationCode  string    `db:"location_code" json:"location_code"`
	Lat           float64   `db:"lat" json:"lat"`
	Lng           float64   `db:"lng" json:"lng"`
	Price         *string   `db:"price" json:"price,omitempty"`
	Rating        float64   `db:"rating" json:"rating"`
	ReviewCount   int       `db:"review_count" json:"review_count"`
	Categories    []string  `db:"categories" json:"categories"`
	Phone         *string   `db:"phone" json:"phone,omitempty"`
	Address       *string   `db:"address" json:"address,omitempty"`
	Provider      string    `db:"provider" json:"provider"`
	LastFetchedAt time.Time `db:"last_fetched_at" json:"last_fetched_at"`
}
