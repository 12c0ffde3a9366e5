package memstore

import (
	"bytes"
	"context"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

type image struct {
	filename    string
	contentType string
	data        []byte
}

type ImageStore struct {
	mu     sync.RWMutex
	images map[bson.ObjectID]image
}

func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[bson.ObjectID]image)}
}

func (s *ImageStore) Upload(_ context.Context, filename, contentType string, src io.Reader) (bson.ObjectID, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return bson.NilObjectID, err
	}

	id := bson.NewObjectID()
	s.mu.Lock()
	s.images[id] = image{filename: filename, contentType: contentType, data: data}
	s.mu.Unlock()
	return id, nil
}

func (s *ImageStore) Open(_ context.Context, id bson.ObjectID) (io.ReadCloser, string, error) {
	s.mu.RLock()
	img, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		return nil, "", repository.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(img.data)), img.contentType, nil
}
