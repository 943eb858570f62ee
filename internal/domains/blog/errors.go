package blog

import "errors"

// Repository-level errors
var (
	ErrPostNotFound = errors.New("blog post not found")
	ErrLikeNotFound = errors.New("like not found")
	ErrAlreadyLiked = errors.New("post already liked by this session")
)
