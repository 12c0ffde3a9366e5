package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/repository/memstore"
)

func TestImageUploadAndOpen(t *testing.T) {
	ctx := context.Background()
	svc := NewImageService(memstore.NewImageStore())

	id, err := svc.Upload(ctx, "cat.png", "image/png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)

	rc, ct, err := svc.Open(ctx, id)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(body))
	assert.Equal(t, "image/png", ct)
}

func TestImageUploadRejectsNonImages(t *testing.T) {
	svc := NewImageService(memstore.NewImageStore())
	_, err := svc.Upload(context.Background(), "x.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestImageOpenMissing(t *testing.T) {
	svc := NewImageService(memstore.NewImageStore())
	_, _, err := svc.Open(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, ErrImageNotFound)
}
