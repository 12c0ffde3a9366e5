package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/models"
)

// containsFold matches s anywhere in the field, ignoring case. The input is
// quoted so it is never interpreted as a pattern.
func containsFold(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// equalFold matches the whole field, ignoring case.
func equalFold(s string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(s) + "$", "$options": "i"}
}

// BuildBlogFilter turns a listing filter into a Mongo query document.
// Search spans title, content and tags; category and tag match array
// elements exactly.
func BuildBlogFilter(f models.BlogFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": containsFold(f.Search)},
			bson.M{"content": containsFold(f.Search)},
			bson.M{"tags": containsFold(f.Search)},
		}
	}
	if f.Category != "" {
		filter["categories"] = f.Category
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Author != nil {
		filter["author"] = *f.Author
	}
	return filter
}
