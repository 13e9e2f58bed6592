package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/store"
)

const (
	// excerptLength is how much of a description the feed shows.
	excerptLength = 30

	// feedDateLayout renders timestamps like "January 02" for list views.
	feedDateLayout = "January 02"
)

type PostService struct {
	Store store.Store
}

// ListForUser returns the feed projection of the given user's posts.
func (s *PostService) ListForUser(ctx context.Context, email string) ([]domain.PostSummary, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	posts, err := s.Store.Posts().ListPostsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, domain.PostSummary{
			ID:               p.ID,
			Title:            p.Title,
			FormattedDate:    p.Created.Format(feedDateLayout),
			ShortDescription: excerpt(p.Description, excerptLength),
		})
	}
	return summaries, nil
}

// Create stores a new post owned by the user behind the given email.
func (s *PostService) Create(ctx context.Context, email, title, description string) (int64, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	return s.Store.Posts().CreatePost(ctx, domain.Post{
		UserID:      user.ID,
		Title:       title,
		Description: description,
		Created:     time.Now().UTC(),
	})
}

// Detail returns a post with its comment and like counts.
func (s *PostService) Detail(ctx context.Context, id int64) (domain.PostDetail, error) {
	return s.Store.Posts().GetPostDetail(ctx, id)
}

// Delete removes a post; its comments and likes cascade.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.Store.Posts().DeletePost(ctx, id)
}

// Like records that a user likes a post.
func (s *PostService) Like(ctx context.Context, postID, userID int64) error {
	return s.Store.Likes().CreateLike(ctx, postID, userID)
}

// Unlike removes a user's like from a post.
func (s *PostService) Unlike(ctx context.Context, postID, userID int64) error {
	return s.Store.Likes().DeleteLike(ctx, postID, userID)
}

// excerpt truncates s to at most n runes.
func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
