package domain

import "time"

// User is a registered account. Rows are keyed by an auto-incrementing id;
// email is unique and links a user to the identity provider identity.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
