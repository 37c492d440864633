package model

import "time"

// User 由身分供應商的 subject 識別，首次通過驗證的請求時建立。
type User struct {
	ID          int       `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	FullName    string    `db:"full_name" json:"full_name"`
	AuthSubject string    `db:"auth_subject" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
