package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnsupportedImage   = errors.New("unsupported image type")
)
