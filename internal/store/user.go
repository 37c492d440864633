package store

import (
	"context"
	"fmt"

	"dinewise/internal/database"
	"dinewise/internal/model"
)

// UpsertUserBySubject 以身分供應商的 subject 建立或更新使用者。
// 首次出現的 subject 會建立資料列，之後則刷新 email 與顯示名稱。
func UpsertUserBySubject(ctx context.Context, db database.DB, subject, email, fullName string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (auth_subject, email, full_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (auth_subject) DO UPDATE
		 SET email = EXCLUDED.email, full_name = EXCLUDED.full_name
		 RETURNING id, email, full_name, auth_subject, created_at`,
		subject,
		email,
		fullName,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.AuthSubject, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("UpsertUserBySubject: %w", err)
	}
	return u, nil
}

// GetUserByID 以 primary key 取得使用者。
func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, full_name, auth_subject, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.AuthSubject, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}
