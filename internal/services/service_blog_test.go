package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/models"
	"github.com/Amitgupta170804/BlogEase/internal/repository/memstore"
)

type blogFixture struct {
	svc   *BlogService
	users *memstore.UserStore
	blogs *memstore.BlogStore
	clock time.Time
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()
	f := &blogFixture{
		users: memstore.NewUserStore(),
		blogs: memstore.NewBlogStore(),
		clock: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewBlogService(f.blogs, f.users)
	f.svc.now = func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}
	return f
}

func (f *blogFixture) user(t *testing.T, name string) bson.ObjectID {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@x.io", ProfilePicture: name + ".png"}
	require.NoError(t, f.users.Insert(context.Background(), u))
	return u.ID
}

func (f *blogFixture) post(t *testing.T, author bson.ObjectID, req dto.CreateBlogRequest) *models.Blog {
	t.Helper()
	b, err := f.svc.Create(context.Background(), author, req)
	require.NoError(t, err)
	return b
}

func TestCreateDefaults(t *testing.T) {
	f := newBlogFixture(t)
	alice := f.user(t, "alice")

	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C"})

	assert.False(t, b.ID.IsZero())
	assert.Equal(t, alice, b.Author)
	assert.Zero(t, b.Views)
	assert.Equal(t, []string{}, b.Tags)
	assert.Equal(t, []string{}, b.Categories)
	assert.Equal(t, []string{}, b.Images)
	assert.Empty(t, b.Likes)
	assert.Empty(t, b.Comments)
}

func TestGetIncrementsViewsOncePerCall(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C"})

	first, err := f.svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Views)

	second, err := f.svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.Views)

	require.NotNil(t, second.Author)
	assert.Equal(t, "alice", second.Author.Username)
	assert.Equal(t, "alice.png", second.Author.ProfilePicture)
}

func TestGetMissingBlog(t *testing.T) {
	f := newBlogFixture(t)
	_, err := f.svc.Get(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "Alice")
	bob := f.user(t, "bob")

	first := f.post(t, alice, dto.CreateBlogRequest{Title: "Learning Go", Content: "intro", Tags: []string{"golang"}, Categories: []string{"tech"}})
	second := f.post(t, bob, dto.CreateBlogRequest{Title: "Baking", Content: "bread and GO-karts", Categories: []string{"food"}})
	third := f.post(t, bob, dto.CreateBlogRequest{Title: "Trip", Content: "mountains", Tags: []string{"travel", "goals"}})

	ids := func(views []dto.BlogView) []bson.ObjectID {
		out := make([]bson.ObjectID, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	all, err := f.svc.List(ctx, dto.BlogQuery{})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{third.ID, second.ID, first.ID}, ids(all), "newest first")

	search, err := f.svc.List(ctx, dto.BlogQuery{Search: "go"})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{third.ID, second.ID, first.ID}, ids(search))

	byCategory, err := f.svc.List(ctx, dto.BlogQuery{Category: "tech"})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{first.ID}, ids(byCategory))

	byTag, err := f.svc.List(ctx, dto.BlogQuery{Tag: "travel"})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{third.ID}, ids(byTag))

	partialTag, err := f.svc.List(ctx, dto.BlogQuery{Tag: "trav"})
	require.NoError(t, err)
	assert.Empty(t, partialTag, "tag filter is exact")

	byAuthor, err := f.svc.List(ctx, dto.BlogQuery{Author: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{first.ID}, ids(byAuthor))
	require.NotNil(t, byAuthor[0].Author)
	assert.Equal(t, "Alice", byAuthor[0].Author.Username)
}

func TestListUnknownAuthorIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	bob := f.user(t, "bob")
	f.post(t, bob, dto.CreateBlogRequest{Title: "T", Content: "C"})

	got, err := f.svc.List(ctx, dto.BlogQuery{Author: "alice"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListKeepsBlogsOfDeletedAuthors(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	ghost := bson.NewObjectID()
	f.post(t, ghost, dto.CreateBlogRequest{Title: "T", Content: "C"})

	got, err := f.svc.List(ctx, dto.BlogQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Author)
}

func TestUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	b := f.post(t, alice, dto.CreateBlogRequest{
		Title: "old", Content: "body",
		Tags: []string{"a"}, Categories: []string{"c"}, Images: []string{"i"},
	})

	got, err := f.svc.Update(ctx, b.ID, alice, dto.UpdateBlogRequest{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.Equal(t, []string{"a"}, got.Tags)
	assert.Equal(t, []string{"c"}, got.Categories)
	assert.Equal(t, []string{"i"}, got.Images)

	stored, err := f.blogs.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Title)
	assert.Equal(t, "body", stored.Content)
	assert.True(t, stored.UpdatedAt.After(b.UpdatedAt))
}

func TestUpdateWithEmptyArrayClearsIt(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C", Tags: []string{"a"}})

	got, err := f.svc.Update(ctx, b.ID, alice, dto.UpdateBlogRequest{Tags: []string{}})
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestUpdateAndDeleteRequireAuthor(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C"})

	_, err := f.svc.Update(ctx, b.ID, bob, dto.UpdateBlogRequest{Title: "hijack"})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	assert.ErrorIs(t, f.svc.Delete(ctx, b.ID, bob), ErrNotAuthorized)

	_, err = f.svc.Update(ctx, bson.NewObjectID(), alice, dto.UpdateBlogRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	require.NoError(t, f.svc.Delete(ctx, b.ID, alice))
	_, err = f.svc.Get(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestToggleLikeTwiceRestoresLikes(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C"})

	likes, err := f.svc.ToggleLike(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{alice}, likes)

	likes, err = f.svc.ToggleLike(ctx, b.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{bob, alice}, likes, "new likes go first")

	likes, err = f.svc.ToggleLike(ctx, b.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{alice}, likes)

	likes, err = f.svc.ToggleLike(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.NotNil(t, likes)
	assert.Empty(t, likes)

	_, err = f.svc.ToggleLike(ctx, bson.NewObjectID(), alice)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestAddCommentPrependsAndResolvesAuthors(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C"})

	_, err := f.svc.AddComment(ctx, b.ID, alice, dto.CommentRequest{Text: "first"})
	require.NoError(t, err)
	comments, err := f.svc.AddComment(ctx, b.ID, bob, dto.CommentRequest{Text: "second"})
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	require.NotNil(t, comments[0].User)
	assert.Equal(t, "bob", comments[0].User.Username)
	assert.Equal(t, "first", comments[1].Text)
	assert.Equal(t, "alice", comments[1].User.Username)
	assert.NotEqual(t, comments[0].ID, comments[1].ID)

	_, err = f.svc.AddComment(ctx, bson.NewObjectID(), bob, dto.CommentRequest{Text: "x"})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestDeleteCommentPermissions(t *testing.T) {
	ctx := context.Background()
	f := newBlogFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	carol := f.user(t, "carol")
	b := f.post(t, alice, dto.CreateBlogRequest{Title: "T", Content: "C"})

	comments, err := f.svc.AddComment(ctx, b.ID, bob, dto.CommentRequest{Text: "by bob"})
	require.NoError(t, err)
	bobComment := comments[0].ID
	comments, err = f.svc.AddComment(ctx, b.ID, bob, dto.CommentRequest{Text: "another"})
	require.NoError(t, err)
	second := comments[0].ID

	_, err = f.svc.DeleteComment(ctx, b.ID, bobComment, carol)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	stored, err := f.blogs.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 2, "unauthorized delete leaves comments alone")

	remaining, err := f.svc.DeleteComment(ctx, b.ID, bobComment, bob)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second, remaining[0].ID)

	remaining, err = f.svc.DeleteComment(ctx, b.ID, second, alice)
	require.NoError(t, err, "blog author may remove any comment")
	assert.Empty(t, remaining)

	_, err = f.svc.DeleteComment(ctx, b.ID, second, alice)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = f.svc.DeleteComment(ctx, b.ID, bson.NilObjectID, alice)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = f.svc.DeleteComment(ctx, bson.NewObjectID(), second, alice)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}
