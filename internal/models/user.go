package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username       string        `bson:"username" json:"username"`
	Email          string        `bson:"email" json:"email"`
	PasswordHash   string        `bson:"password" json:"-"`
	Bio            string        `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string        `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}
