package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"lawfirm-backend/internal/domains/blog"
)

// likeKey builds the composite map key enforcing one like per
// (postId, sessionId) pair.
func likeKey(postID, sessionID string) string {
	return postID + "::" + sessionID
}

// postRecord keeps an insertion sequence alongside the post so listings stay
// deterministic when two posts share a creation timestamp.
type postRecord struct {
	post blog.Post
	seq  uint64
}

type memoryRepository struct {
	mu    sync.RWMutex
	seq   uint64
	posts map[string]postRecord
	likes map[string]blog.Like
}

// NewMemoryRepository returns an empty in-process blog repository. State
// lives for the lifetime of the process only.
func NewMemoryRepository() blog.Repository {
	return &memoryRepository{
		posts: make(map[string]postRecord),
		likes: make(map[string]blog.Like),
	}
}

// ========================================
// POSTS
// ========================================

func (r *memoryRepository) ListPosts(_ context.Context, category string) ([]blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]postRecord, 0, len(r.posts))
	for _, rec := range r.posts {
		if !rec.post.Published {
			continue
		}
		if category != "" && rec.post.Category != category {
			continue
		}
		records = append(records, rec)
	}

	// Newest first; insertion order breaks timestamp ties.
	sort.Slice(records, func(i, j int) bool {
		if records[i].post.CreatedAt.Equal(records[j].post.CreatedAt) {
			return records[i].seq > records[j].seq
		}
		return records[i].post.CreatedAt.After(records[j].post.CreatedAt)
	})

	posts := make([]blog.Post, len(records))
	for i, rec := range records {
		posts[i] = rec.post
	}
	return posts, nil
}

func (r *memoryRepository) GetPost(_ context.Context, id string) (*blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	post := rec.post
	return &post, nil
}

func (r *memoryRepository) CreatePost(_ context.Context, post *blog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.posts[post.ID] = postRecord{post: *post, seq: r.seq}
	return nil
}

func (r *memoryRepository) UpdatePost(_ context.Context, id string, patch blog.PostPatch) (*blog.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}

	// Shallow merge: only supplied fields overwrite. ID, Likes and CreatedAt
	// are never touched here; UpdatedAt is refreshed unconditionally.
	post := rec.post
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		post.ImageURL = patch.ImageURL
	}
	if patch.ReadTime != nil {
		post.ReadTime = *patch.ReadTime
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}
	post.UpdatedAt = time.Now()

	rec.post = post
	r.posts[id] = rec

	result := post
	return &result, nil
}

func (r *memoryRepository) DeletePost(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)

	// Cascade: drop the post's like rows so a future post reusing the id
	// starts from a clean slate.
	for key, like := range r.likes {
		if like.PostID == id {
			delete(r.likes, key)
		}
	}
	return true, nil
}

// ========================================
// LIKES
// ========================================

func (r *memoryRepository) GetLike(_ context.Context, postID, sessionID string) (*blog.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	like, ok := r.likes[likeKey(postID, sessionID)]
	if !ok {
		return nil, blog.ErrLikeNotFound
	}
	result := like
	return &result, nil
}

// CreateLike stores the like row and bumps the owning post's cached counter
// in one locked step. A duplicate (postId, sessionId) pair is rejected
// without mutating anything.
func (r *memoryRepository) CreateLike(_ context.Context, like *blog.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey(like.PostID, like.SessionID)
	if _, ok := r.likes[key]; ok {
		return blog.ErrAlreadyLiked
	}
	r.likes[key] = *like

	if rec, ok := r.posts[like.PostID]; ok {
		rec.post.Likes++
		r.posts[like.PostID] = rec
	}
	return nil
}

// DeleteLike removes the like row and decrements the cached counter, floored
// at zero, only when a row was actually removed.
func (r *memoryRepository) DeleteLike(_ context.Context, postID, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey(postID, sessionID)
	if _, ok := r.likes[key]; !ok {
		return false, nil
	}
	delete(r.likes, key)

	if rec, ok := r.posts[postID]; ok && rec.post.Likes > 0 {
		rec.post.Likes--
		r.posts[postID] = rec
	}
	return true, nil
}

// CountLikes scans the like rows; this is the authoritative count the
// like-count endpoints serve, independent of the cached Post.Likes field.
func (r *memoryRepository) CountLikes(_ context.Context, postID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, like := range r.likes {
		if like.PostID == postID {
			count++
		}
	}
	return count, nil
}
