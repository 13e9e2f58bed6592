package sqlite

import (
	"context"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/store"
)

type commentsRepo struct {
	q dbtx
}

func (r *commentsRepo) ListCommentsByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, post_id, user_id, content, created
		 FROM comments WHERE post_id = ? ORDER BY created, id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO comments(post_id, user_id, content, created) VALUES(?, ?, ?, ?)`,
		c.PostID, c.UserID, c.Content, c.Created)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *commentsRepo) DeleteComment(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
