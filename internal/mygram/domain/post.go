package domain

import "time"

// Post is a stored post row.
type Post struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// PostSummary is the feed projection of a post: truncated description and a
// human date ("January 02"), matching what the feed UI renders.
type PostSummary struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	FormattedDate    string `json:"formatted_date"`
	ShortDescription string `json:"short_description"`
}

// PostDetail is a single post with its comment and like counts.
type PostDetail struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	NumComments int64     `json:"num_comments"`
	NumLikes    int64     `json:"num_likes"`
}
