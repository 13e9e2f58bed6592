package service

import (
	"context"
	"time"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/store"
)

type CommentService struct {
	Store store.Store
}

// ListForPost returns a post's comments in list projection, oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID int64) ([]domain.CommentView, error) {
	comments, err := s.Store.Comments().ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, domain.CommentView{
			ID:            c.ID,
			UserID:        c.UserID,
			Content:       c.Content,
			FormattedDate: c.Created.Format(feedDateLayout),
		})
	}
	return views, nil
}

// Add stores a new comment on a post.
func (s *CommentService) Add(ctx context.Context, postID, userID int64, content string) (int64, error) {
	return s.Store.Comments().CreateComment(ctx, domain.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
		Created: time.Now().UTC(),
	})
}

// Delete removes a comment by id.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	return s.Store.Comments().DeleteComment(ctx, id)
}
