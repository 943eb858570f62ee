package blog

import "context"

// Service is the business-logic surface the HTTP handlers call. Input is
// assumed validated by the handler before it reaches here.
type Service interface {
	ListPosts(ctx context.Context, category string) ([]Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error)
	UpdatePost(ctx context.Context, id string, req *UpdatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, id string) error

	LikePost(ctx context.Context, postID, sessionID string) (*Like, int, error)
	UnlikePost(ctx context.Context, postID, sessionID string) (int, error)
	LikeStatus(ctx context.Context, postID, sessionID string) (*LikeStatusResponse, error)
	LikeCount(ctx context.Context, postID string) (int, error)
}
