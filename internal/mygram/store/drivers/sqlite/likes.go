package sqlite

import (
	"context"

	"github.com/mygramapp/mygram/internal/mygram/store"
)

type likesRepo struct {
	q dbtx
}

func (r *likesRepo) CreateLike(ctx context.Context, postID, userID int64) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO post_likes(post_id, user_id) VALUES(?, ?)`, postID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *likesRepo) DeleteLike(ctx context.Context, postID, userID int64) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = ? AND user_id = ?`, postID, userID)
	return err
}
