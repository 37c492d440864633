package store

import (
	"context"
	"fmt"

	"dinewise/internal/database"
	"dinewise/internal/model"
)

// UpsertFlags merges the provided flags into the stored row. Nil fields are
// left untouched on an existing row and default to false on a fresh one, so
// a request that only sets visited never clobbers promo_opt_in.
func UpsertFlags(ctx context.Context, db database.DB, userID int, yelpID string, visited, promoOptIn *bool) (*model.RestaurantFlags, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO user_restaurant_flags (user_id, yelp_id, visited, promo_opt_in)
		 VALUES ($1, $2, COALESCE($3, false), COALESCE($4, false))
		 ON CONFLICT (user_id, yelp_id) DO UPDATE SET
		    visited = COALESCE($3, user_restaurant_flags.visited),
		    promo_opt_in = COALESCE($4, user_restaurant_flags.promo_opt_in),
		    updated_at = now()
		 RETURNING id, user_id, yelp_id, visited, promo_opt_in, updated_at`,
		userID,
		yelpID,
		visited,
		promoOptIn,
	)
	f := &model.RestaurantFlags{}
	if err := row.Scan(&f.ID, &f.UserID, &f.YelpID, &f.Visited, &f.PromoOptIn, &f.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpsertFlags: %w", err)
	}
	return f, nil
}

// GetFlags 查單一餐廳的旗標，沒有資料列時回傳 nil。
func GetFlags(ctx context.Context, db database.DB, userID int, yelpID string) (*model.RestaurantFlags, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, yelp_id, visited, promo_opt_in, updated_at
		 FROM user_restaurant_flags
		 WHERE user_id = $1 AND yelp_id = $2`,
		userID,
		yelpID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetFlags: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("GetFlags: %w", err)
		}
		return nil, nil
	}
	f := &model.RestaurantFlags{}
	if err := rows.Scan(&f.ID, &f.UserID, &f.YelpID, &f.Visited, &f.PromoOptIn, &f.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetFlags: %w", err)
	}
	return f, nil
}

func ListFlags(ctx context.Context, db database.DB, userID int) ([]model.RestaurantFlags, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, yelp_id, visited, promo_opt_in, updated_at
		 FROM user_restaurant_flags
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFlags: %w", err)
	}
	defer rows.Close()

	flags := []model.RestaurantFlags{}
	for rows.Next() {
		f := model.RestaurantFlags{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.YelpID, &f.Visited, &f.PromoOptIn, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListFlags: %w", err)
		}
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFlags: %w", err)
	}
	return flags, nil
}

// DeleteFlags removes the caller's flags row for one restaurant.
func DeleteFlags(ctx context.Context, db database.DB, userID int, yelpID string) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM user_restaurant_flags WHERE user_id = $1 AND yelp_id = $2`,
		userID,
		yelpID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteFlags: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
