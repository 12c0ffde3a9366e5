package services

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/models"
)

// Lookups return repository.ErrNotFound for missing documents and writes
// return repository.ErrDuplicate on unique-index violations.

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameFold(ctx context.Context, username string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.User, error)
	UpdateProfile(ctx context.Context, u *models.User) error
}

type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error)
	Find(ctx context.Context, f models.BlogFilter) ([]models.Blog, error)
	SaveViews(ctx context.Context, b *models.Blog) error
	SaveLikes(ctx context.Context, b *models.Blog) error
	SaveComments(ctx context.Context, b *models.Blog) error
	SaveContent(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, src io.Reader) (bson.ObjectID, error)
	Open(ctx context.Context, id bson.ObjectID) (io.ReadCloser, string, error)
}
