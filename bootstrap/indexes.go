package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureUserIndexes backs the registration checks: a username or email can
// only be stored once even when two registrations race.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}

// EnsureBlogIndexes covers the newest-first listing, with and without an author filter.
func EnsureBlogIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("blogs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
		{
			Keys: bson.D{
				{Key: "author", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("author_created_desc"),
		},
	})
	if err != nil {
		return fmt.Errorf("blogs indexes: %w", err)
	}
	return nil
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := EnsureUserIndexes(ctx, db); err != nil {
		return err
	}
	return EnsureBlogIndexes(ctx, db)
}
