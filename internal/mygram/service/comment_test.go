package service

import (
	"context"
	"testing"

	"github.com/mygramapp/mygram/internal/mygram/store"

	"github.com/stretchr/testify/require"
)

func TestCommentService_AddAndList(t *testing.T) {
	st := newTestStore(t)
	posts := &PostService{Store: st}
	svc := &CommentService{Store: st}
	ctx := context.Background()

	user := seedUser(t, st, "Jess", "jess@example.com")
	postID, err := posts.Create(ctx, user.Email, "A post", "desc")
	require.NoError(t, err)

	first, err := svc.Add(ctx, postID, user.ID, "first!")
	require.NoError(t, err)
	second, err := svc.Add(ctx, postID, user.ID, "second")
	require.NoError(t, err)

	views, err := svc.ListForPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Oldest first
	require.Equal(t, first, views[0].ID)
	require.Equal(t, "first!", views[0].Content)
	require.Equal(t, second, views[1].ID)
	require.Equal(t, user.ID, views[0].UserID)
	require.NotEmpty(t, views[0].FormattedDate)
}

func TestCommentService_Delete(t *testing.T) {
	st := newTestStore(t)
	posts := &PostService{Store: st}
	svc := &CommentService{Store: st}
	ctx := context.Background()

	user := seedUser(t, st, "Jess", "jess@example.com")
	postID, err := posts.Create(ctx, user.Email, "A post", "desc")
	require.NoError(t, err)

	id, err := svc.Add(ctx, postID, user.ID, "oops")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	views, err := svc.ListForPost(ctx, postID)
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestCommentService_DeleteNotFound(t *testing.T) {
	st := newTestStore(t)
	svc := &CommentService{Store: st}

	require.ErrorIs(t, svc.Delete(context.Background(), 999), store.ErrNotFound)
}

func TestUserService_CreateAndLookup(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	created, err := svc.Create(ctx, "Jess", "jess@example.com")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "Jess", created.Name)

	byID, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, byID.Email)

	byEmail, err := svc.GetByEmail(ctx, "jess@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUserService_DuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	_, err := svc.Create(ctx, "Jess", "jess@example.com")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Other Jess", "jess@example.com")
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}
