package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/store"
	"github.com/mygramapp/mygram/internal/mygram/store/drivers/sqlite"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(ON)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, name, email string) domain.User {
	t.Helper()

	id, err := st.Users().CreateUser(context.Background(), name, email)
	require.NoError(t, err)

	user, err := st.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

func TestPostService_CreateAndListForUser(t *testing.T) {
	st := newTestStore(t)
	svc := &PostService{Store: st}
	ctx := context.Background()

	seedUser(t, st, "Jess", "jess@example.com")

	longDescription := strings.Repeat("a", 50)
	_, err := svc.Create(ctx, "jess@example.com", "First post", longDescription)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "jess@example.com", "Second post", "short")
	require.NoError(t, err)

	summaries, err := svc.ListForUser(ctx, "jess@example.com")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest first
	require.Equal(t, "Second post", summaries[0].Title)
	require.Equal(t, "short", summaries[0].ShortDescription)
	require.Equal(t, "First post", summaries[1].Title)
	require.Equal(t, strings.Repeat("a", 30), summaries[1].ShortDescription)
	require.NotEmpty(t, summaries[0].FormattedDate)
}

func TestPostService_CreateUnknownUser(t *testing.T) {
	st := newTestStore(t)
	svc := &PostService{Store: st}

	_, err := svc.Create(context.Background(), "ghost@example.com", "Title", "desc")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostService_DetailCounts(t *testing.T) {
	st := newTestStore(t)
	posts := &PostService{Store: st}
	comments := &CommentService{Store: st}
	ctx := context.Background()

	author := seedUser(t, st, "Jess", "jess@example.com")
	fan := seedUser(t, st, "Sam", "sam@example.com")

	postID, err := posts.Create(ctx, author.Email, "A post", "with activity")
	require.NoError(t, err)

	_, err = comments.Add(ctx, postID, fan.ID, "nice")
	require.NoError(t, err)
	_, err = comments.Add(ctx, postID, author.ID, "thanks")
	require.NoError(t, err)
	require.NoError(t, posts.Like(ctx, postID, fan.ID))

	detail, err := posts.Detail(ctx, postID)
	require.NoError(t, err)
	require.Equal(t, "A post", detail.Title)
	require.Equal(t, int64(2), detail.NumComments)
	require.Equal(t, int64(1), detail.NumLikes)
}

func TestPostService_DetailNotFound(t *testing.T) {
	st := newTestStore(t)
	svc := &PostService{Store: st}

	_, err := svc.Detail(context.Background(), 999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostService_LikeTwice(t *testing.T) {
	st := newTestStore(t)
	svc := &PostService{Store: st}
	ctx := context.Background()

	user := seedUser(t, st, "Jess", "jess@example.com")
	postID, err := svc.Create(ctx, user.Email, "A post", "desc")
	require.NoError(t, err)

	require.NoError(t, svc.Like(ctx, postID, user.ID))
	require.ErrorIs(t, svc.Like(ctx, postID, user.ID), store.ErrAlreadyExists)

	require.NoError(t, svc.Unlike(ctx, postID, user.ID))
	require.NoError(t, svc.Like(ctx, postID, user.ID))
}

func TestPostService_DeleteCascades(t *testing.T) {
	st := newTestStore(t)
	posts := &PostService{Store: st}
	comments := &CommentService{Store: st}
	ctx := context.Background()

	user := seedUser(t, st, "Jess", "jess@example.com")
	postID, err := posts.Create(ctx, user.Email, "Doomed", "desc")
	require.NoError(t, err)

	_, err = comments.Add(ctx, postID, user.ID, "soon gone")
	require.NoError(t, err)
	require.NoError(t, posts.Like(ctx, postID, user.ID))

	require.NoError(t, posts.Delete(ctx, postID))

	_, err = posts.Detail(ctx, postID)
	require.ErrorIs(t, err, store.ErrNotFound)

	remaining, err := comments.ListForPost(ctx, postID)
	require.NoError(t, err)
	require.Empty(t, remaining)
}

func TestPostService_DeleteNotFound(t *testing.T) {
	st := newTestStore(t)
	svc := &PostService{Store: st}

	require.ErrorIs(t, svc.Delete(context.Background(), 999), store.ErrNotFound)
}

func TestExcerpt(t *testing.T) {
	require.Equal(t, "short", excerpt("short", 30))
	require.Equal(t, strings.Repeat("x", 30), excerpt(strings.Repeat("x", 45), 30))

	// Truncation is rune-safe, not byte-safe
	require.Equal(t, "héllo", excerpt("héllo wörld", 5))
}
