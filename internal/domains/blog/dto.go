package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// BLOG POST DTOs
// ========================================

// CreatePostRequest is the client-suppliable subset of a post. Server-assigned
// fields (id, likes, timestamps) are not accepted; likes always starts at 0.
type CreatePostRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Excerpt   string  `json:"excerpt"`
	Category  string  `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	ReadTime  string  `json:"readTime"`
	Published *bool   `json:"published"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.Length(1, 1000),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != nil && *r.ImageURL != "",
				is.URL.Error("imageUrl must be a valid URL"),
			),
		),
		validation.Field(&r.ReadTime,
			validation.Required.Error("readTime is required"),
			validation.Length(1, 50),
		),
	)
}

// UpdatePostRequest accepts any subset of the insert fields. Absent fields are
// not touched; no required rule is re-enforced.
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Category  *string `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	ReadTime  *string `json:"readTime"`
	Published *bool   `json:"published"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title must not be empty"),
				validation.Length(1, 300),
			),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil,
				validation.Required.Error("content must not be empty"),
			),
		),
		validation.Field(&r.Excerpt,
			validation.When(r.Excerpt != nil,
				validation.Required.Error("excerpt must not be empty"),
				validation.Length(1, 1000),
			),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil,
				validation.Required.Error("category must not be empty"),
				validation.Length(1, 100),
			),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != nil && *r.ImageURL != "",
				is.URL.Error("imageUrl must be a valid URL"),
			),
		),
		validation.Field(&r.ReadTime,
			validation.When(r.ReadTime != nil,
				validation.Required.Error("readTime must not be empty"),
				validation.Length(1, 50),
			),
		),
	)
}

// Patch converts the request into a repository patch.
func (r UpdatePostRequest) Patch() PostPatch {
	return PostPatch{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Category:  r.Category,
		ImageURL:  r.ImageURL,
		ReadTime:  r.ReadTime,
		Published: r.Published,
	}
}

// ========================================
// LIKE DTOs
// ========================================

// LikeRequest optionally carries an explicit session id; when absent the
// visitor cookie is used instead.
type LikeRequest struct {
	SessionID string `json:"sessionId"`
}

// LikeResponse is returned by the like endpoint.
type LikeResponse struct {
	Like      *Like `json:"like"`
	LikeCount int   `json:"likeCount"`
}

// UnlikeResponse is returned by the unlike endpoint.
type UnlikeResponse struct {
	Message   string `json:"message"`
	LikeCount int    `json:"likeCount"`
}

// LikeStatusResponse reports whether the visitor's session liked a post.
type LikeStatusResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// LikeCountResponse is the scan-based authoritative count.
type LikeCountResponse struct {
	LikeCount int `json:"likeCount"`
}
