package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dinewise/internal/database"
	"dinewise/internal/model"

	"github.com/jackc/pgx/v5"
)

const restaurantColumns = `id, yelp_id, name, location_code, lat, lng, price, rating, review_count, categories, phone, address, provider, last_fetched_at`

// CachedSearchFilter 是快取路徑的查詢條件。
type CachedSearchFilter struct {
	LocationCode string
	Query        string
	Cuisine      string
	Prices       []string
	RatingMin    *float64
	Limit        int
	Offset       int
}

func scanRestaurant(row pgx.Row) (*model.CachedRestaurant, error) {
	r := &model.CachedRestaurant{}
	var rawCategories []byte
	if err := row.Scan(
		&r.ID,
		&r.YelpID,
		&r.Name,
		&r.LocationCode,
		&r.Lat,
		&r.Lng,
		&r.Price,
		&r.Rating,
		&r.ReviewCount,
		&rawCategories,
		&r.Phone,
		&r.Address,
		&r.Provider,
		&r.LastFetchedAt,
	); err != nil {
		return nil, err
	}
	if len(rawCategories) > 0 {
		if err := json.Unmarshal(rawCategories, &r.Categories); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SearchCached filters the local cache by area code plus the optional
// predicates, ordered by rating then review count, both descending. The
// ordering is the documented tie-break of the cache path.
func SearchCached(ctx context.Context, db database.DB, f CachedSearchFilter) ([]model.CachedRestaurant, error) {
	sql := `SELECT ` + restaurantColumns + `
		 FROM restaurant_cache
		 WHERE location_code = $1 AND review_count > 0`
	args := []any{f.LocationCode}

	if f.Query != "" {
		needle, err := json.Marshal([]string{strings.ToLower(f.Query)})
		if err != nil {
			return nil, fmt.Errorf("SearchCached: %w", err)
		}
		args = append(args, "%"+f.Query+"%", needle)
		sql += fmt.Sprintf(" AND (name ILIKE $%d OR categories @> $%d)", len(args)-1, len(args))
	}
	if f.Cuisine != "" {
		needle, err := json.Marshal([]string{strings.ToLower(f.Cuisine)})
		if err != nil {
			return nil, fmt.Errorf("SearchCached: %w", err)
		}
		args = append(args, needle)
		sql += fmt.Sprintf(" AND categories @> $%d", len(args))
	}
	if len(f.Prices) > 0 {
		args = append(args, f.Prices)
		sql += fmt.Sprintf(" AND price = ANY($%d)", len(args))
	}
	if f.RatingMin != nil {
		args = append(args, *f.RatingMin)
		sql += fmt.Sprintf(" AND rating >= $%d", len(args))
	}

	args = append(args, f.Limit, f.Offset)
	sql += fmt.Sprintf(" ORDER BY rating DESC, review_count DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchCached: %w", err)
	}
	defer rows.Close()

	restaurants := []model.CachedRestaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("SearchCached: %w", err)
		}
		restaurants = append(restaurants, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchCached: %w", err)
	}
	return restaurants, nil
}

// GetRestaurantByYelpID 以 yelp_id 取得快取列，不存在時回傳 (nil, nil)。
func GetRestaurantByYelpID(ctx context.Context, db database.DB, yelpID string) (*model.CachedRestaurant, error) {
	row := db.QueryRow(ctx,
		`SELECT `+restaurantColumns+` FROM restaurant_cache WHERE yelp_id = $1`,
		yelpID,
	)
	r, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetRestaurantByYelpID: %w", err)
	}
	return r, nil
}

// UpsertRestaurant writes one cache row keyed by yelp_id. The invariant is one
// row per external id; conflicting writes refresh every mutable field.
func UpsertRestaurant(ctx context.Context, db database.DB, r *model.CachedRestaurant) error {
	categories, err := json.Marshal(r.Categories)
	if err != nil {
		return fmt.Errorf("UpsertRestaurant: %w", err)
	}
	if r.Provider == "" {
		r.Provider = "yelp"
	}
	_, err = db.Exec(ctx,
		`INSERT INTO restaurant_cache
			(yelp_id, name, location_code, lat, lng, price, rating, review_count, categories, phone, address, provider, last_fetched_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		 ON CONFLICT (yelp_id) DO UPDATE SET
			name = EXCLUDED.name,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			price = EXCLUDED.price,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			categories = EXCLUDED.categories,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			last_fetched_at = now()`,
		r.YelpID,
		r.Name,
		r.LocationCode,
		r.Lat,
		r.Lng,
		r.Price,
		r.Rating,
		r.ReviewCount,
		categories,
		r.Phone,
		r.Address,
		r.Provider,
	)
	if err != nil {
		return fmt.Errorf("UpsertRestaurant: %w", err)
	}
	return nil
}
