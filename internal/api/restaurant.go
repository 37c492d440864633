package api

// Coordinates 經緯度
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"40.7580"`
	Longitude float64 `json:"longitude" example:"-73.9855"`
}

// RestaurantSummary is the single normalized result shape shared by the cache
// and live search paths. Callers cannot tell provenance from the item itself.
// swagger:model api.RestaurantSummary
type RestaurantSummary struct {
	ID          string       `json:"id" example:"north-dumpling-new-york"`
	Name        string       `json:"name" example:"North Dumpling"`
	Rating      float64      `json:"rating" example:"4.5"`
	Price       *string      `json:"price,omitempty" example:"$$"`
	Categories  []string     `json:"categories"`
	ImageURL    *string      `json:"image_url,omitempty"`
	Distance    *float64     `json:"distance,omitempty" example:"512.3"`
	IsOpen      bool         `json:"is_open" example:"true"`
	ReviewCount int          `json:"review_count" example:"1024"`
	Address     *string      `json:"address,omitempty" example:"27 Essex St, New York, NY"`
	Phone       *string      `json:"phone,omitempty" example:"(212) 555-0100"`
	YelpURL     *string      `json:"yelp_url,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// RestaurantDetail extends the summary with fields only the detail endpoint
// returns (photos, hours, transactions).
// swagger:model api.RestaurantDetail
type RestaurantDetail struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Rating       float64      `json:"rating"`
	Price        *string      `json:"price,omitempty"`
	Categories   []string     `json:"categories"`
	ImageURL     *string      `json:"image_url,omitempty"`
	Photos       []string     `json:"photos"`
	IsOpen       bool         `json:"is_open"`
	ReviewCount  int          `json:"review_count"`
	Address      *string      `json:"address,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	YelpURL      *string      `json:"yelp_url,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Hours        any          `json:"hours,omitempty"`
	Transactions []string     `json:"transactions"`
}

// YelpReview 上游評論，僅供顯示。
// swagger:model api.YelpReview
type YelpReview struct {
	ID          string  `json:"id"`
	Rating      int     `json:"rating" example:"5"`
	Text        string  `json:"text"`
	TimeCreated string  `json:"time_created" example:"2024-11-02 13:01:05"`
	User struct {
		Name     string  `json:"name"`
		ImageURL *string `json:"image_url,omitempty"`
	} `json:"user"`
	URL *string `json:"url,omitempty"`
}
