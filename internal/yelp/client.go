package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dinewise/internal/api"
)

const (
	// 上游單頁上限
	maxPageSize = 50
	maxRadius   = 40000
)

// Client talks to the Yelp Fusion API. Safe for concurrent use; the embedded
// http.Client pools connections across requests.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Code: ErrCodeUpstream, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Code: ErrCodeUpstream, Message: fmt.Sprintf("request %s: %v", path, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &APIError{StatusCode: resp.StatusCode, Code: ErrCodeRateLimited, Message: "rate limit exceeded"}
	case resp.StatusCode == http.StatusBadRequest:
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("invalid request: %s", raw)}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{StatusCode: resp.StatusCode, Code: ErrCodeNotFound, Message: "business not found"}
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Code: ErrCodeUpstream, Message: fmt.Sprintf("upstream status %d: %s", resp.StatusCode, raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Code: ErrCodeUpstream, Message: fmt.Sprintf("decode %s: %v", path, err)}
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

// SearchBusinesses 呼叫 /businesses/search 並轉成正規化摘要。
func (c *Client) SearchBusinesses(ctx context.Context, p SearchParams) ([]api.RestaurantSummary, error) {
	if p.Location == "" {
		return nil, &APIError{Code: ErrCodeInvalidRequest, Message: "location must be provided"}
	}

	params := url.Values{}
	term := p.Term
	if term == "" {
		term = "restaurants"
	}
	params.Set("term", term)
	params.Set("location", p.Location)
	params.Set("limit", strconv.Itoa(clampLimit(p.Limit)))
	params.Set("offset", strconv.Itoa(p.Offset))
	if p.Price != "" {
		params.Set("price", p.Price)
	}

	var out wireSearchResponse
	if err := c.get(ctx, "/businesses/search", params, &out); err != nil {
		return nil, err
	}
	return summarize(out.Businesses), nil
}

// SearchNearby 以座標與半徑呼叫 /businesses/search。上游將半徑視為建議值，
// 嚴格過濾由呼叫端負責。
func (c *Client) SearchNearby(ctx context.Context, p NearbyParams) ([]api.RestaurantSummary, error) {
	radius := p.Radius
	if radius > maxRadius {
		radius = maxRadius
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("limit", strconv.Itoa(clampLimit(p.Limit)))
	if p.Categories != "" {
		params.Set("categories", p.Categories)
	}

	var out wireSearchResponse
	if err := c.get(ctx, "/businesses/search", params, &out); err != nil {
		return nil, err
	}
	return summarize(out.Businesses), nil
}

// GetBusiness 呼叫 /businesses/{id}。
func (c *Client) GetBusiness(ctx context.Context, yelpID string) (*api.RestaurantDetail, error) {
	var out wireBusiness
	if err := c.get(ctx, "/businesses/"+url.PathEscape(yelpID), nil, &out); err != nil {
		return nil, err
	}
	detail := toDetail(out)
	return &detail, nil
}

// GetReviews 呼叫 /businesses/{id}/reviews。
func (c *Client) GetReviews(ctx context.Context, yelpID string) ([]api.YelpReview, error) {
	var out wireReviewsResponse
	if err := c.get(ctx, "/businesses/"+url.PathEscape(yelpID)+"/reviews", nil, &out); err != nil {
		return nil, err
	}
	reviews := make([]api.YelpReview, 0, len(out.Reviews))
	for _, r := range out.Reviews {
		reviews = append(reviews, toReview(r))
	}
	return reviews, nil
}
