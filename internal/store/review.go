package store

import (
	"context"
	"fmt"

	"dinewise/internal/database"
	"dinewise/internal/model"
)

func CreateReview(ctx context.Context, db database.DB, userID int, yelpID string, rating int, text string) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reviews (user_id, yelp_id, rating, review_text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, yelp_id, rating, review_text, created_at, updated_at`,
		userID,
		yelpID,
		rating,
		text,
	)
	r := &model.Review{}
	if err := row.Scan(&r.ID, &r.UserID, &r.YelpID, &r.Rating, &r.Text, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateReview: %w", err)
	}
	return r, nil
}

// ReviewWithAuthor 帶出作者名稱，餐廳頁面列表用。
type ReviewWithAuthor struct {
	model.Review
	AuthorName string
}

// ListReviewsByRestaurant returns all reviews for one restaurant, newest
// first, with the author's display name joined in.
func ListReviewsByRestaurant(ctx context.Context, db database.DB, yelpID string) ([]ReviewWithAuthor, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, r.yelp_id, r.rating, r.review_text, r.created_at, r.updated_at, u.full_name
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.yelp_id = $1
		 ORDER BY r.created_at DESC`,
		yelpID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByRestaurant: %w", err)
	}
	defer rows.Close()

	reviews := []ReviewWithAuthor{}
	for rows.Next() {
		r := ReviewWithAuthor{}
		if err := rows.Scan(&r.ID, &r.UserID, &r.YelpID, &r.Rating, &r.Text, &r.CreatedAt, &r.UpdatedAt, &r.AuthorName); err != nil {
			return nil, fmt.Errorf("ListReviewsByRestaurant: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviewsByRestaurant: %w", err)
	}
	return reviews, nil
}

func ListReviewsByUser(ctx context.Context, db database.DB, userID int) ([]model.Review, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, yelp_id, rating, review_text, created_at, updated_at
		 FROM reviews WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByUser: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		r := model.Review{}
		if err := rows.Scan(&r.ID, &r.UserID, &r.YelpID, &r.Rating, &r.Text, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListReviewsByUser: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviewsByUser: %w", err)
	}
	return reviews, nil
}

// UpdateReview applies a partial update to the caller's own review. Nil
// fields keep their stored value. A nil result with nil error means the
// review does not exist or belongs to another user.
func UpdateReview(ctx context.Context, db database.DB, reviewID, userID int, rating *int, text *string) (*model.Review, error) {
	rows, err := db.Query(ctx,
		`UPDATE reviews
		 SET rating = COALESCE($3, rating),
		     review_text = COALESCE($4, review_text),
		     updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, yelp_id, rating, review_text, created_at, updated_at`,
		reviewID,
		userID,
		rating,
		text,
	)
	if err != nil {
		return nil, fmt.Errorf("UpdateReview: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("UpdateReview: %w", err)
		}
		return nil, nil
	}
	r := &model.Review{}
	if err := rows.Scan(&r.ID, &r.UserID, &r.YelpID, &r.Rating, &r.Text, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateReview: %w", err)
	}
	return r, nil
}

// DeleteReview deletes the caller's own review, reporting whether a row was
// removed.
func DeleteReview(ctx context.Context, db database.DB, reviewID, userID int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM reviews WHERE id = $1 AND user_id = $2`,
		reviewID,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteReview: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
