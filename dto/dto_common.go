package dto

import "go.mongodb.org/mongo-driver/v2/bson"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

type ImageResponse struct {
	ID  bson.ObjectID `json:"_id"`
	URL string        `json:"url"`
}
