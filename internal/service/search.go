package service

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/model"
	"dinewise/internal/store"
	"dinewise/internal/yelp"
)

// 測試時可覆寫的函式變數
var (
	searchCached          = store.SearchCached
	upsertRestaurant      = store.UpsertRestaurant
	getRestaurantByYelpID = store.GetRestaurantByYelpID
)

const (
	methodCached = "cached_db"
	methodLive   = "yelp_api"

	defaultLocation = "New York City"
	defaultLimit    = 20

	// location_code stamped on rows written back from live searches, so they
	// never match a borough cache query.
	writeBackCode = "SEARCH"
)

// boroughCodes are the area codes served from the local cache.
var boroughCodes = map[string]bool{
	"MAN": true,
	"BK":  true,
	"QN":  true,
	"BX":  true,
	"SI":  true,
}

// IsBorough reports whether the location routes to the cache path.
// Codes compare case-insensitively.
func IsBorough(location string) bool {
	return boroughCodes[strings.ToUpper(strings.TrimSpace(location))]
}

// priceTier 把價位符號對應到上游的價位層級。
var priceTier = map[string]string{
	"$":    "1",
	"$$":   "2",
	"$$$":  "3",
	"$$$$": "4",
}

// parsePrices splits the comma separated price filter and rejects anything
// that is not one of the four tiers.
func parsePrices(csv string) ([]string, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	prices := []string{}
	for _, token := range strings.Split(csv, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, ok := priceTier[token]; !ok {
			return nil, NewError(http.StatusBadRequest, api.ErrCodeValidation, "price must be a comma separated list of $ to $$$$")
		}
		prices = append(prices, token)
	}
	return prices, nil
}

func tiersParam(prices []string) string {
	tiers := make([]string, 0, len(prices))
	for _, p := range prices {
		tiers = append(tiers, priceTier[p])
	}
	return strings.Join(tiers, ",")
}

func filterByRating(items []api.RestaurantSummary, min *float64) []api.RestaurantSummary {
	if min == nil {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		if it.Rating >= *min {
			kept = append(kept, it)
		}
	}
	return kept
}

func dropUnreviewed(items []api.RestaurantSummary) []api.RestaurantSummary {
	kept := items[:0]
	for _, it := range items {
		if it.ReviewCount > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}

// sortByRating orders like the cache path: rating then review count, both
// descending.
func sortByRating(items []api.RestaurantSummary) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rating != items[j].Rating {
			return items[i].Rating > items[j].Rating
		}
		return items[i].ReviewCount > items[j].ReviewCount
	})
}

func SummaryFromCache(r model.CachedRestaurant) api.RestaurantSummary {
	return api.RestaurantSummary{
		ID:          r.YelpID,
		Name:        r.Name,
		Rating:      r.Rating,
		Price:       r.Price,
		Categories:  r.Categories,
		ReviewCount: r.ReviewCount,
		Address:     r.Address,
		Phone:       r.Phone,
		Coordinates: &api.Coordinates{Latitude: r.Lat, Longitude: r.Lng},
	}
}

func cacheFromSummary(s api.RestaurantSummary, locationCode string) *model.CachedRestaurant {
	r := &model.CachedRestaurant{
		YelpID:       s.ID,
		Name:         s.Name,
		LocationCode: locationCode,
		Price:        s.Price,
		Rating:       s.Rating,
		ReviewCount:  s.ReviewCount,
		Categories:   s.Categories,
		Phone:        s.Phone,
		Address:      s.Address,
	}
	if s.Coordinates != nil {
		r.Lat = s.Coordinates.Latitude
		r.Lng = s.Coordinates.Longitude
	}
	return r
}

// Search routes a query to the local cache for borough codes and to the live
// provider for everything else. Both paths return the same normalized shape.
func Search(ctx context.Context, db database.DB, yp yelp.API, req api.SearchRequest) (*api.SearchResponse, error) {
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}

	prices, err := parsePrices(req.Price)
	if err != nil {
		return nil, err
	}

	if IsBorough(req.Location) {
		return searchFromCache(ctx, db, req, prices)
	}
	return searchLive(ctx, db, yp, req, prices)
}

func searchFromCache(ctx context.Context, db database.DB, req api.SearchRequest, prices []string) (*api.SearchResponse, error) {
	rows, err := searchCached(ctx, db, store.CachedSearchFilter{
		LocationCode: strings.ToUpper(strings.TrimSpace(req.Location)),
		Query:        req.Query,
		Cuisine:      req.Cuisine,
		Prices:       prices,
		RatingMin:    req.RatingMin,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		return nil, NewError(http.StatusInternalServerError, api.ErrCodeInternal, "search failed")
	}

	restaurants := make([]api.RestaurantSummary, 0, len(rows))
	for _, r := range rows {
		restaurants = append(restaurants, SummaryFromCache(r))
	}
	return &api.SearchResponse{
		Status:      "success",
		Method:      methodCached,
		Total:       len(restaurants),
		Limit:       req.Limit,
		Offset:      req.Offset,
		Restaurants: restaurants,
	}, nil
}

func searchLive(ctx context.Context, db database.DB, yp yelp.API, req api.SearchRequest, prices []string) (*api.SearchResponse, error) {
	term := strings.TrimSpace(req.Query)
	if term == "" {
		term = "restaurants"
	}
	if c := strings.TrimSpace(req.Cuisine); c != "" {
		term = term + " " + c
	}
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = defaultLocation
	}

	items, err := yp.SearchBusinesses(ctx, yelp.SearchParams{
		Term:     term,
		Location: location,
		Price:    tiersParam(prices),
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		logf("businesses/search 失敗: term=%q location=%q price=%q: %v", term, location, tiersParam(prices), err)
		return nil, FromUpstream(err)
	}

	if items == nil {
		items = []api.RestaurantSummary{}
	}
	items = dropUnreviewed(items)
	items = filterByRating(items, req.RatingMin)
	sortByRating(items)

	// 盡力寫回快取，失敗不影響回應。
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		_ = upsertRestaurant(ctx, db, cacheFromSummary(it, writeBackCode))
	}

	return &api.SearchResponse{
		Status:      "success",
		Method:      methodLive,
		Total:       len(items),
		Limit:       req.Limit,
		Offset:      req.Offset,
		Restaurants: items,
	}, nil
}
