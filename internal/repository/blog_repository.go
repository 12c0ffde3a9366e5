package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Amitgupta170804/BlogEase/internal/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		col: db.Collection("blogs"),
	}
}

func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	if b.ID.IsZero() {
		b.ID = bson.NewObjectID()
	}
	b.Normalize()
	_, err := r.col.InsertOne(ctx, b)
	return translate(err)
}

func (r *BlogRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, translate(err)
	}
	b.Normalize()
	return &b, nil
}

// Find lists the blogs matching f, newest first.
func (r *BlogRepository) Find(ctx context.Context, f models.BlogFilter) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cur, err := r.col.Find(ctx, BuildBlogFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	blogs := []models.Blog{}
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		b.Normalize()
		blogs = append(blogs, b)
	}
	return blogs, cur.Err()
}

// set writes only the given paths plus updatedAt, leaving concurrent
// changes to other paths of the same document intact.
func (r *BlogRepository) set(ctx context.Context, b *models.Blog, fields bson.M) error {
	fields["updatedAt"] = b.UpdatedAt
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": b.ID}, bson.M{"$set": fields})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BlogRepository) SaveViews(ctx context.Context, b *models.Blog) error {
	return r.set(ctx, b, bson.M{"views": b.Views})
}

func (r *BlogRepository) SaveLikes(ctx context.Context, b *models.Blog) error {
	b.Normalize()
	return r.set(ctx, b, bson.M{"likes": b.Likes})
}

func (r *BlogRepository) SaveComments(ctx context.Context, b *models.Blog) error {
	b.Normalize()
	return r.set(ctx, b, bson.M{"comments": b.Comments})
}

func (r *BlogRepository) SaveContent(ctx context.Context, b *models.Blog) error {
	b.Normalize()
	return r.set(ctx, b, bson.M{
		"title":      b.Title,
		"content":    b.Content,
		"tags":       b.Tags,
		"categories": b.Categories,
		"images":     b.Images,
	})
}

func (r *BlogRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
