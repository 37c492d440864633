package store

import (
	"context"
	"fmt"

	"dinewise/internal/database"
	"dinewise/internal/model"
)

// AddWishlistEntry adds one (user, restaurant) pair. The unique constraint
// makes the add idempotent: a duplicate add lands on the existing row and
// returns it unchanged, so two concurrent adds cannot double-apply.
func AddWishlistEntry(ctx context.Context, db database.DB, userID int, yelpID string) (*model.WishlistEntry, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO wishlist (user_id, yelp_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, yelp_id) DO UPDATE SET yelp_id = EXCLUDED.yelp_id
		 RETURNING id, user_id, yelp_id, created_at`,
		userID,
		yelpID,
	)
	e := &model.WishlistEntry{}
	if err := row.Scan(&e.ID, &e.UserID, &e.YelpID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("AddWishlistEntry: %w", err)
	}
	return e, nil
}

// ListWishlist 回傳使用者的願望清單，新的在前。
func ListWishlist(ctx context.Context, db database.DB, userID int) ([]model.WishlistEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, yelp_id, created_at
		 FROM wishlist WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListWishlist: %w", err)
	}
	defer rows.Close()

	entries := []model.WishlistEntry{}
	for rows.Next() {
		e := model.WishlistEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.YelpID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListWishlist: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWishlist: %w", err)
	}
	return entries, nil
}

// RemoveWishlistEntry deletes the caller's own row. The user_id predicate is
// the ownership check; deleting someone else's row reports false.
func RemoveWishlistEntry(ctx context.Context, db database.DB, userID int, yelpID string) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM wishlist WHERE user_id = $1 AND yelp_id = $2`,
		userID,
		yelpID,
	)
	if err != nil {
		return false, fmt.Errorf("RemoveWishlistEntry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// WishlistContains 查詢會員狀態。
func WishlistContains(ctx context.Context, db database.DB, userID int, yelpID string) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM wishlist WHERE user_id = $1 AND yelp_id = $2)`,
		userID,
		yelpID,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("WishlistContains: %w", err)
	}
	return exists, nil
}
