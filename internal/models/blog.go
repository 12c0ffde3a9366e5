package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Blog struct {
	ID         bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title      string          `bson:"title" json:"title"`
	Content    string          `bson:"content" json:"content"`
	Author     bson.ObjectID   `bson:"author" json:"author"`
	Tags       []string        `bson:"tags" json:"tags"`
	Categories []string        `bson:"categories" json:"categories"`
	Images     []string        `bson:"images" json:"images"`
	Views      int64           `bson:"views" json:"views"`
	Likes      []bson.ObjectID `bson:"likes" json:"likes"`
	Comments   []Comment       `bson:"comments" json:"comments"`
	CreatedAt  time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Comment is embedded in Blog.Comments, newest first.
type Comment struct {
	ID   bson.ObjectID `bson:"_id" json:"_id"`
	User bson.ObjectID `bson:"user" json:"user"`
	Text string        `bson:"text" json:"text"`
	Date time.Time     `bson:"date" json:"date"`
}

// BlogFilter selects blogs for listing. Zero values mean "no constraint".
type BlogFilter struct {
	Search   string
	Category string
	Tag      string
	Author   *bson.ObjectID
}

// Normalize replaces nil slices with empty ones so documents and
// responses never carry null arrays.
func (b *Blog) Normalize() {
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Categories == nil {
		b.Categories = []string{}
	}
	if b.Images == nil {
		b.Images = []string{}
	}
	if b.Likes == nil {
		b.Likes = []bson.ObjectID{}
	}
	if b.Comments == nil {
		b.Comments = []Comment{}
	}
}

// Clone returns a copy that shares no slices with b.
func (b Blog) Clone() Blog {
	out := b
	out.Tags = append([]string(nil), b.Tags...)
	out.Categories = append([]string(nil), b.Categories...)
	out.Images = append([]string(nil), b.Images...)
	out.Likes = append([]bson.ObjectID(nil), b.Likes...)
	out.Comments = append([]Comment(nil), b.Comments...)
	out.Normalize()
	return out
}
