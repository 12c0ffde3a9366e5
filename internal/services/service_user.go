package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/models"
	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

type UserService struct {
	users UserStore
	blogs BlogStore
	now   func() time.Time
}

func NewUserService(users UserStore, blogs BlogStore) *UserService {
	return &UserService{users: users, blogs: blogs, now: time.Now}
}

func (s *UserService) Profile(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

// Blogs lists an author's blogs newest first with only the username resolved.
// An author without blogs, or unknown to the users collection, yields an empty list.
func (s *UserService) Blogs(ctx context.Context, authorID bson.ObjectID) ([]dto.BlogView, error) {
	blogs, err := s.blogs.Find(ctx, models.BlogFilter{Author: &authorID})
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	return populateBlogs(ctx, s.users, blogs, false)
}

// UpdateProfile changes the caller's own username, bio or picture. Empty
// fields are left as they are.
func (s *UserService) UpdateProfile(ctx context.Context, uid bson.ObjectID, req dto.UpdateProfileRequest) (*models.User, error) {
	u, err := s.Profile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		other, err := s.users.FindByUsername(ctx, req.Username)
		switch {
		case err == nil && other.ID != uid:
			return nil, ErrUsernameTaken
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("lookup username: %w", err)
		}
		u.Username = req.Username
	}
	if req.Bio != "" {
		u.Bio = req.Bio
	}
	if req.ProfilePicture != "" {
		u.ProfilePicture = req.ProfilePicture
	}
	u.UpdatedAt = s.now().UTC()

	if err := s.users.UpdateProfile(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
