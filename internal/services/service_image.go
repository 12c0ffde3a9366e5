package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

type ImageService struct {
	images ImageStore
}

func NewImageService(images ImageStore) *ImageService {
	return &ImageService{images: images}
}

func (s *ImageService) Upload(ctx context.Context, filename, contentType string, src io.Reader) (bson.ObjectID, error) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return bson.NilObjectID, ErrUnsupportedImage
	}
	id, err := s.images.Upload(ctx, filename, contentType, src)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("store image: %w", err)
	}
	return id, nil
}

func (s *ImageService) Open(ctx context.Context, id bson.ObjectID) (io.ReadCloser, string, error) {
	rc, contentType, err := s.images.Open(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrImageNotFound
		}
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	return rc, contentType, nil
}
