package domain

import "time"

// Comment is a stored comment row.
type Comment struct {
	ID      int64     `json:"id"`
	PostID  int64     `json:"post_id"`
	UserID  int64     `json:"user_id"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}

// CommentView is the list projection of a comment with a human date.
type CommentView struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	Content       string `json:"content"`
	FormattedDate string `json:"formatted_date"`
}
