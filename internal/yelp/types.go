package yelp

// Raw wire shapes of the upstream Fusion API. They never leave this package:
// every response is translated to the normalized api types at the boundary.

type wireCategory struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type wireLocation struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type wireCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type wireBusiness struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Rating        float64          `json:"rating"`
	Price         string           `json:"price"`
	Categories    []wireCategory   `json:"categories"`
	ImageURL      string           `json:"image_url"`
	Distance      *float64         `json:"distance"`
	IsClosed      *bool            `json:"is_closed"`
	ReviewCount   int              `json:"review_count"`
	Location      wireLocation     `json:"location"`
	DisplayPhone  string           `json:"display_phone"`
	URL           string           `json:"url"`
	Coordinates   *wireCoordinates `json:"coordinates"`
	Photos        []string         `json:"photos"`
	BusinessHours []any            `json:"business_hours"`
	Transactions  []string         `json:"transactions"`
}

type wireSearchResponse struct {
	Businesses []wireBusiness `json:"businesses"`
	Total      int            `json:"total"`
}

type wireReviewUser struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type wireReview struct {
	ID          string         `json:"id"`
	Rating      int            `json:"rating"`
	Text        string         `json:"text"`
	TimeCreated string         `json:"time_created"`
	User        wireReviewUser `json:"user"`
	URL         string         `json:"url"`
}

type wireReviewsResponse struct {
	Reviews []wireReview `json:"reviews"`
	Total   int          `json:"total"`
}
