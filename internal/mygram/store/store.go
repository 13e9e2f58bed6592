package store

import (
	"context"
	"errors"

	"github.com/mygramapp/mygram/internal/mygram/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Posts() Posts
	Comments() Comments
	Likes() Likes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByID returns a user by row id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail resolves the identity-provider email to a user row.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and returns its generated id.
	// Duplicate emails return ErrAlreadyExists.
	CreateUser(ctx context.Context, name, email string) (int64, error)
}

type Posts interface {
	// ListPostsByUser returns a user's posts, newest first.
	ListPostsByUser(ctx context.Context, userID int64) ([]domain.Post, error)

	// GetPostDetail returns a post with its comment and like counts.
	GetPostDetail(ctx context.Context, id int64) (domain.PostDetail, error)

	// CreatePost inserts a post and returns its generated id.
	CreatePost(ctx context.Context, p domain.Post) (int64, error)

	// DeletePost removes a post; comments and likes cascade per schema.
	DeletePost(ctx context.Context, id int64) error
}

type Comments interface {
	// ListCommentsByPost returns a post's comments, oldest first.
	ListCommentsByPost(ctx context.Context, postID int64) ([]domain.Comment, error)

	// CreateComment inserts a comment and returns its generated id.
	CreateComment(ctx context.Context, c domain.Comment) (int64, error)

	// DeleteComment removes a comment by id.
	DeleteComment(ctx context.Context, id int64) error
}

type Likes interface {
	// CreateLike records that a user likes a post.
	// Liking the same post twice returns ErrAlreadyExists.
	CreateLike(ctx context.Context, postID, userID int64) error

	// DeleteLike removes a user's like from a post.
	DeleteLike(ctx context.Context, postID, userID int64) error
}
