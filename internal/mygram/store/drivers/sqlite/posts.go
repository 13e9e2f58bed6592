package sqlite

import (
	"context"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/store"
)

type postsRepo struct {
	q dbtx
}

func (r *postsRepo) ListPostsByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, title, description, created
		 FROM posts WHERE user_id = ? ORDER BY created DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Created); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postsRepo) GetPostDetail(ctx context.Context, id int64) (domain.PostDetail, error) {
	var d domain.PostDetail
	err := r.q.QueryRowContext(ctx,
		`SELECT posts.id, posts.title, posts.description, posts.created,
		        COUNT(DISTINCT comments.id)   AS num_comments,
		        COUNT(DISTINCT post_likes.id) AS num_likes
		 FROM posts
		 LEFT JOIN comments   ON posts.id = comments.post_id
		 LEFT JOIN post_likes ON posts.id = post_likes.post_id
		 WHERE posts.id = ?
		 GROUP BY posts.id`, id).
		Scan(&d.ID, &d.Title, &d.Description, &d.Created, &d.NumComments, &d.NumLikes)
	if err != nil {
		return domain.PostDetail{}, mapNotFound(err)
	}
	return d, nil
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO posts(user_id, title, description, created) VALUES(?, ?, ?, ?)`,
		p.UserID, p.Title, p.Description, p.Created)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
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
