package blog

import "time"

// Post is a published article on the firm's site. Likes is a counter
// maintained incrementally by the like/unlike operations; the like rows
// themselves are the authoritative source for the like-count endpoints.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	ImageURL  *string   `json:"imageUrl"`
	Likes     int       `json:"likes"`
	ReadTime  string    `json:"readTime"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Like links an anonymous visitor session to a post. At most one like exists
// per (postId, sessionId) pair.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostPatch is a partial update applied over an existing post. Nil fields are
// left untouched. ID, Likes and CreatedAt are never patchable; UpdatedAt is
// refreshed on every patch, even an empty one.
type PostPatch struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Category  *string
	ImageURL  *string
	ReadTime  *string
	Published *bool
}
