package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/models"
)

type CreateBlogRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
	Images     []string `json:"images"`
}

// UpdateBlogRequest is a partial update. Empty strings and absent (or null)
// arrays leave the stored value alone; a present array, even an empty one,
// replaces it.
type UpdateBlogRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
	Images     []string `json:"images"`
}

type BlogQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Author   string `query:"author"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// AuthorRef is a populated user reference. ProfilePicture is left out
// where only the username is resolved.
type AuthorRef struct {
	ID             bson.ObjectID `json:"_id"`
	Username       string        `json:"username"`
	ProfilePicture string        `json:"profilePicture,omitempty"`
}

type CommentView struct {
	ID   bson.ObjectID `json:"_id"`
	User *AuthorRef    `json:"user"`
	Text string        `json:"text"`
	Date time.Time     `json:"date"`
}

// BlogView is a blog with its author resolved. Author is nil when the
// referenced user no longer exists.
type BlogView struct {
	ID         bson.ObjectID    `json:"_id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Author     *AuthorRef       `json:"author"`
	Tags       []string         `json:"tags"`
	Categories []string         `json:"categories"`
	Images     []string         `json:"images"`
	Views      int64            `json:"views"`
	Likes      []bson.ObjectID  `json:"likes"`
	Comments   []models.Comment `json:"comments"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
