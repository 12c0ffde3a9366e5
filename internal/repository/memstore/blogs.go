package memstore

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/models"
	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

// BlogStore hands out copies, so callers only change stored blogs through
// the Save methods.
type BlogStore struct {
	mu    sync.RWMutex
	blogs map[bson.ObjectID]models.Blog
}

func NewBlogStore() *BlogStore {
	return &BlogStore{blogs: make(map[bson.ObjectID]models.Blog)}
}

func (s *BlogStore) Insert(_ context.Context, b *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID.IsZero() {
		b.ID = bson.NewObjectID()
	}
	if _, exists := s.blogs[b.ID]; exists {
		return repository.ErrDuplicate
	}
	b.Normalize()
	s.blogs[b.ID] = b.Clone()
	return nil
}

func (s *BlogStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := b.Clone()
	return &out, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func matches(b models.Blog, f models.BlogFilter) bool {
	if f.Search != "" {
		hit := containsFold(b.Title, f.Search) || containsFold(b.Content, f.Search) ||
			slices.ContainsFunc(b.Tags, func(t string) bool { return containsFold(t, f.Search) })
		if !hit {
			return false
		}
	}
	if f.Category != "" && !slices.Contains(b.Categories, f.Category) {
		return false
	}
	if f.Tag != "" && !slices.Contains(b.Tags, f.Tag) {
		return false
	}
	if f.Author != nil && b.Author != *f.Author {
		return false
	}
	return true
}

func (s *BlogStore) Find(_ context.Context, f models.BlogFilter) ([]models.Blog, error) {
	s.mu.RLock()
	out := []models.Blog{}
	for _, b := range s.blogs {
		if matches(b, f) {
			out = append(out, b.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out, nil
}

func (s *BlogStore) update(id bson.ObjectID, apply func(*models.Blog)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.blogs[id]
	if !ok {
		return repository.ErrNotFound
	}
	apply(&cur)
	s.blogs[id] = cur.Clone()
	return nil
}

func (s *BlogStore) SaveViews(_ context.Context, b *models.Blog) error {
	return s.update(b.ID, func(cur *models.Blog) {
		cur.Views = b.Views
		cur.UpdatedAt = b.UpdatedAt
	})
}

func (s *BlogStore) SaveLikes(_ context.Context, b *models.Blog) error {
	return s.update(b.ID, func(cur *models.Blog) {
		cur.Likes = b.Likes
		cur.UpdatedAt = b.UpdatedAt
	})
}

func (s *BlogStore) SaveComments(_ context.Context, b *models.Blog) error {
	return s.update(b.ID, func(cur *models.Blog) {
		cur.Comments = b.Comments
		cur.UpdatedAt = b.UpdatedAt
	})
}

func (s *BlogStore) SaveContent(_ context.Context, b *models.Blog) error {
	return s.update(b.ID, func(cur *models.Blog) {
		cur.Title = b.Title
		cur.Content = b.Content
		cur.Tags = b.Tags
		cur.Categories = b.Categories
		cur.Images = b.Images
		cur.UpdatedAt = b.UpdatedAt
	})
}

func (s *BlogStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.blogs, id)
	return nil
}
