package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/models"
)

// resolveAuthors loads the referenced users in one query. Ids without a
// user are absent from the result.
func resolveAuthors(ctx context.Context, users UserStore, ids []bson.ObjectID, withPicture bool) (map[bson.ObjectID]*dto.AuthorRef, error) {
	seen := make(map[bson.ObjectID]struct{}, len(ids))
	unique := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := users.FindByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("resolve authors: %w", err)
	}

	refs := make(map[bson.ObjectID]*dto.AuthorRef, len(found))
	for _, u := range found {
		ref := &dto.AuthorRef{ID: u.ID, Username: u.Username}
		if withPicture {
			ref.ProfilePicture = u.ProfilePicture
		}
		refs[u.ID] = ref
	}
	return refs, nil
}

func blogView(b models.Blog, refs map[bson.ObjectID]*dto.AuthorRef) dto.BlogView {
	b.Normalize()
	return dto.BlogView{
		ID:         b.ID,
		Title:      b.Title,
		Content:    b.Content,
		Author:     refs[b.Author],
		Tags:       b.Tags,
		Categories: b.Categories,
		Images:     b.Images,
		Views:      b.Views,
		Likes:      b.Likes,
		Comments:   b.Comments,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func populateBlogs(ctx context.Context, users UserStore, blogs []models.Blog, withPicture bool) ([]dto.BlogView, error) {
	ids := make([]bson.ObjectID, 0, len(blogs))
	for _, b := range blogs {
		ids = append(ids, b.Author)
	}
	refs, err := resolveAuthors(ctx, users, ids, withPicture)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, blogView(b, refs))
	}
	return views, nil
}

func populateComments(ctx context.Context, users UserStore, comments []models.Comment) ([]dto.CommentView, error) {
	ids := make([]bson.ObjectID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.User)
	}
	refs, err := resolveAuthors(ctx, users, ids, true)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, dto.CommentView{
			ID:   c.ID,
			User: refs[c.User],
			Text: c.Text,
			Date: c.Date,
		})
	}
	return views, nil
}
