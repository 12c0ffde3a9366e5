package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/models"
	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

// BlogService mutates blogs read-modify-write without version checks:
// concurrent view counts, likes or comments on one blog can overwrite
// each other.
type BlogService struct {
	blogs BlogStore
	users UserStore
	now   func() time.Time
}

func NewBlogService(blogs BlogStore, users UserStore) *BlogService {
	return &BlogService{blogs: blogs, users: users, now: time.Now}
}

func (s *BlogService) load(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("load blog: %w", err)
	}
	return b, nil
}

func (s *BlogService) loadOwned(ctx context.Context, id, uid bson.ObjectID) (*models.Blog, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Author != uid {
		return nil, ErrNotAuthorized
	}
	return b, nil
}

// saved maps a write error; a blog deleted between load and write reads as not found.
func saved(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}

func (s *BlogService) Create(ctx context.Context, uid bson.ObjectID, req dto.CreateBlogRequest) (*models.Blog, error) {
	now := s.now().UTC()
	b := &models.Blog{
		Title:      req.Title,
		Content:    req.Content,
		Author:     uid,
		Tags:       req.Tags,
		Categories: req.Categories,
		Images:     req.Images,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b.Normalize()
	if err := s.blogs.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return b, nil
}

// List applies the query filters. An author filter naming nobody yields an
// empty list.
func (s *BlogService) List(ctx context.Context, q dto.BlogQuery) ([]dto.BlogView, error) {
	f := models.BlogFilter{
		Search:   q.Search,
		Category: q.Category,
		Tag:      q.Tag,
	}

	if q.Author != "" {
		u, err := s.users.FindByUsernameFold(ctx, q.Author)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return []dto.BlogView{}, nil
			}
			return nil, fmt.Errorf("resolve author: %w", err)
		}
		f.Author = &u.ID
	}

	blogs, err := s.blogs.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	return populateBlogs(ctx, s.users, blogs, true)
}

// Get counts the read before returning the blog.
func (s *BlogService) Get(ctx context.Context, id bson.ObjectID) (*dto.BlogView, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Views++
	b.UpdatedAt = s.now().UTC()
	if err := s.blogs.SaveViews(ctx, b); err != nil {
		return nil, saved(err)
	}

	views, err := populateBlogs(ctx, s.users, []models.Blog{*b}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *BlogService) Update(ctx context.Context, id, uid bson.ObjectID, req dto.UpdateBlogRequest) (*models.Blog, error) {
	b, err := s.loadOwned(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		b.Title = req.Title
	}
	if req.Content != "" {
		b.Content = req.Content
	}
	if req.Tags != nil {
		b.Tags = req.Tags
	}
	if req.Categories != nil {
		b.Categories = req.Categories
	}
	if req.Images != nil {
		b.Images = req.Images
	}
	b.UpdatedAt = s.now().UTC()

	if err := s.blogs.SaveContent(ctx, b); err != nil {
		return nil, saved(err)
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, id, uid bson.ObjectID) error {
	if _, err := s.loadOwned(ctx, id, uid); err != nil {
		return err
	}
	return saved(s.blogs.Delete(ctx, id))
}

// ToggleLike removes the caller's like if present, otherwise adds it at
// the front. It returns the resulting likes.
func (s *BlogService) ToggleLike(ctx context.Context, id, uid bson.ObjectID) ([]bson.ObjectID, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if slices.Contains(b.Likes, uid) {
		b.Likes = slices.DeleteFunc(b.Likes, func(l bson.ObjectID) bool { return l == uid })
	} else {
		b.Likes = append([]bson.ObjectID{uid}, b.Likes...)
	}
	b.UpdatedAt = s.now().UTC()

	if err := s.blogs.SaveLikes(ctx, b); err != nil {
		return nil, saved(err)
	}
	return b.Likes, nil
}

// AddComment puts the new comment first and returns every comment with
// its author resolved.
func (s *BlogService) AddComment(ctx context.Context, id, uid bson.ObjectID, req dto.CommentRequest) ([]dto.CommentView, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	comment := models.Comment{
		ID:   bson.NewObjectID(),
		User: uid,
		Text: req.Text,
		Date: now,
	}
	b.Comments = append([]models.Comment{comment}, b.Comments...)
	b.UpdatedAt = now

	if err := s.blogs.SaveComments(ctx, b); err != nil {
		return nil, saved(err)
	}
	return populateComments(ctx, s.users, b.Comments)
}

// DeleteComment lets the comment's author or the blog's author remove it.
func (s *BlogService) DeleteComment(ctx context.Context, id, commentID, uid bson.ObjectID) ([]models.Comment, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(b.Comments, func(c models.Comment) bool { return c.ID == commentID })
	if idx < 0 || commentID.IsZero() {
		return nil, ErrCommentNotFound
	}
	if b.Comments[idx].User != uid && b.Author != uid {
		return nil, ErrNotAuthorized
	}

	b.Comments = slices.Delete(b.Comments, idx, idx+1)
	b.UpdatedAt = s.now().UTC()

	if err := s.blogs.SaveComments(ctx, b); err != nil {
		return nil, saved(err)
	}
	return b.Comments, nil
}
