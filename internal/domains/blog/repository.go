package blog

import "context"

// Repository is the sole owner of blog post and like state. Implementations
// must make each composite mutation (like creation plus counter bump, patch
// merge, cascade delete) atomic with respect to concurrent callers.
type Repository interface {
	// Posts
	ListPosts(ctx context.Context, category string) ([]Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, post *Post) error
	UpdatePost(ctx context.Context, id string, patch PostPatch) (*Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)

	// Likes
	GetLike(ctx context.Context, postID, sessionID string) (*Like, error)
	CreateLike(ctx context.Context, like *Like) error
	DeleteLike(ctx context.Context, postID, sessionID string) (bool, error)
	CountLikes(ctx context.Context, postID string) (int, error)
}
