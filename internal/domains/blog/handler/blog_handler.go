package handler

import (
	"errors"
	"net/http"

	"lawfirm-backend/internal/domains/blog"
	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	service    blog.Service
	sessionCfg middleware.SessionConfig
}

func NewBlogHandler(svc blog.Service, sessionCfg middleware.SessionConfig) *BlogHandler {
	return &BlogHandler{
		service:    svc,
		sessionCfg: sessionCfg,
	}
}

// ========== LIST: GET /api/blog?category= ==========
func (h *BlogHandler) List(c *gin.Context) {
	category := c.Query("category")

	posts, err := h.service.ListPosts(c.Request.Context(), category)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch blog posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ========== READ: GET /api/blog/:id ==========
func (h *BlogHandler) GetByID(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			response.NotFound(c, "Blog post not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch blog post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ========== CREATE: POST /api/blog ==========
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid blog post data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid blog post data", err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "Failed to create blog post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ========== UPDATE: PUT /api/blog/:id ==========
// Partial merge: only supplied fields overwrite the stored post.
func (h *BlogHandler) Update(c *gin.Context) {
	var req blog.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid blog post data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid blog post data", err)
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			response.NotFound(c, "Blog post not found")
			return
		}
		response.InternalServerError(c, "Failed to update blog post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ========== DELETE: DELETE /api/blog/:id ==========
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			response.NotFound(c, "Blog post not found")
			return
		}
		response.InternalServerError(c, "Failed to delete blog post")
		return
	}

	c.Status(http.StatusNoContent)
}

// ========== LIKE: POST /api/blog/:id/like ==========
func (h *BlogHandler) Like(c *gin.Context) {
	postID := c.Param("id")

	// Body is optional; a missing or malformed body means "use the cookie".
	var req blog.LikeRequest
	_ = c.ShouldBindJSON(&req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = middleware.EnsureSessionID(c, h.sessionCfg)
	}

	like, count, err := h.service.LikePost(c.Request.Context(), postID, sessionID)
	if err != nil {
		if errors.Is(err, blog.ErrAlreadyLiked) {
			response.Conflict(c, "Post already liked by this session")
			return
		}
		response.InternalServerError(c, "Failed to like post")
		return
	}

	c.JSON(http.StatusCreated, blog.LikeResponse{Like: like, LikeCount: count})
}

// ========== UNLIKE: DELETE /api/blog/:id/like ==========
func (h *BlogHandler) Unlike(c *gin.Context) {
	postID := c.Param("id")

	var req blog.LikeRequest
	_ = c.ShouldBindJSON(&req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = middleware.GetSessionID(c)
	}
	if sessionID == "" {
		response.BadRequest(c, "Session not found")
		return
	}

	count, err := h.service.UnlikePost(c.Request.Context(), postID, sessionID)
	if err != nil {
		if errors.Is(err, blog.ErrLikeNotFound) {
			response.NotFound(c, "Like not found")
			return
		}
		response.InternalServerError(c, "Failed to remove like")
		return
	}

	c.JSON(http.StatusOK, blog.UnlikeResponse{Message: "Like removed", LikeCount: count})
}

// ========== LIKE STATUS: GET /api/blog/:id/like-status ==========
// Never fails for an unknown session: no session simply means liked=false.
func (h *BlogHandler) LikeStatus(c *gin.Context) {
	postID := c.Param("id")

	sessionID := c.Query("sessionId")
	if sessionID == "" {
		sessionID = middleware.GetSessionID(c)
	}

	status, err := h.service.LikeStatus(c.Request.Context(), postID, sessionID)
	if err != nil {
		response.InternalServerError(c, "Failed to get like status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// ========== LIKE COUNT: GET /api/blog/:id/like-count ==========
func (h *BlogHandler) LikeCount(c *gin.Context) {
	count, err := h.service.LikeCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalServerError(c, "Failed to fetch like count")
		return
	}

	c.JSON(http.StatusOK, blog.LikeCountResponse{LikeCount: count})
}
