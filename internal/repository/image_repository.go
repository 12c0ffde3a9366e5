package repository

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ImageRepository keeps uploaded images in a GridFS bucket. Blogs and
// profiles only store the returned id.
type ImageRepository struct {
	bucket *mongo.GridFSBucket
}

func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{
		bucket: db.GridFSBucket(options.GridFSBucket().SetName("images")),
	}
}

func (r *ImageRepository) Upload(ctx context.Context, filename, contentType string, src io.Reader) (bson.ObjectID, error) {
	fileID := bson.NewObjectID()
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if err := r.bucket.UploadFromStreamWithID(ctx, fileID, filename, src, opts); err != nil {
		return bson.NilObjectID, err
	}
	return fileID, nil
}

// Open returns a stream over the stored bytes and the content type
// recorded at upload time.
func (r *ImageRepository) Open(ctx context.Context, id bson.ObjectID) (io.ReadCloser, string, error) {
	stream, err := r.bucket.OpenDownloadStream(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	contentType := "application/octet-stream"
	if file := stream.GetFile(); file != nil && len(file.Metadata) > 0 {
		if ct, ok := file.Metadata.Lookup("contentType").StringValueOK(); ok && ct != "" {
			contentType = ct
		}
	}
	return stream, contentType, nil
}
