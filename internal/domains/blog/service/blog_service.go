package service

import (
	"context"
	"time"

	"lawfirm-backend/internal/domains/blog"

	"github.com/google/uuid"
)

type blogServiceImpl struct {
	repository blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogServiceImpl{
		repository: repo,
	}
}

// ========================================
// POSTS
// ========================================

func (s *blogServiceImpl) ListPosts(ctx context.Context, category string) ([]blog.Post, error) {
	posts, err := s.repository.ListPosts(ctx, category)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	return posts, nil
}

func (s *blogServiceImpl) GetPost(ctx context.Context, id string) (*blog.Post, error) {
	return s.repository.GetPost(ctx, id)
}

func (s *blogServiceImpl) CreatePost(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	now := time.Now()

	// Server-assigned fields: fresh id, likes always 0, published defaults
	// to true when the client leaves it out.
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post := &blog.Post{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Likes:     0,
		ReadTime:  req.ReadTime,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogServiceImpl) UpdatePost(ctx context.Context, id string, req *blog.UpdatePostRequest) (*blog.Post, error) {
	return s.repository.UpdatePost(ctx, id, req.Patch())
}

func (s *blogServiceImpl) DeletePost(ctx context.Context, id string) error {
	deleted, err := s.repository.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return blog.ErrPostNotFound
	}
	return nil
}

// ========================================
// LIKES
// ========================================

func (s *blogServiceImpl) LikePost(ctx context.Context, postID, sessionID string) (*blog.Like, int, error) {
	like := &blog.Like{
		ID:        uuid.New().String(),
		PostID:    postID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}

	if err := s.repository.CreateLike(ctx, like); err != nil {
		return nil, 0, err
	}

	count, err := s.repository.CountLikes(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return like, count, nil
}

func (s *blogServiceImpl) UnlikePost(ctx context.Context, postID, sessionID string) (int, error) {
	deleted, err := s.repository.DeleteLike(ctx, postID, sessionID)
	if err != nil {
		return 0, err
	}
	if !deleted {
		return 0, blog.ErrLikeNotFound
	}
	return s.repository.CountLikes(ctx, postID)
}

func (s *blogServiceImpl) LikeStatus(ctx context.Context, postID, sessionID string) (*blog.LikeStatusResponse, error) {
	liked := false
	if sessionID != "" {
		if _, err := s.repository.GetLike(ctx, postID, sessionID); err == nil {
			liked = true
		}
	}

	count, err := s.repository.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &blog.LikeStatusResponse{Liked: liked, LikeCount: count}, nil
}

func (s *blogServiceImpl) LikeCount(ctx context.Context, postID string) (int, error) {
	return s.repository.CountLikes(ctx, postID)
}
