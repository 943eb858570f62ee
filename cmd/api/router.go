package main

import (
	"net/http"

	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Session(c.SessionCfg),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupBlogRoutes(api, c)
		setupContactRoutes(api, c)
		setupChatRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blog := api.Group("/blog")
	{
		blog.GET("", c.BlogHandler.List)
		blog.POST("", c.BlogHandler.Create)
		blog.GET("/:id", c.BlogHandler.GetByID)
		blog.PUT("/:id", c.BlogHandler.Update)
		blog.DELETE("/:id", c.BlogHandler.Delete)

		blog.POST("/:id/like", c.BlogHandler.Like)
		blog.DELETE("/:id/like", c.BlogHandler.Unlike)
		blog.GET("/:id/like-status", c.BlogHandler.LikeStatus)
		blog.GET("/:id/like-count", c.BlogHandler.LikeCount)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	contact := api.Group("/contact")
	{
		contact.GET("", c.ContactHandler.List)
		contact.POST("", c.ContactHandler.Create)
		contact.PATCH("/:id/status", c.ContactHandler.UpdateStatus)
	}
}

// ========================================
// CHAT ROUTES
// ========================================
func setupChatRoutes(api *gin.RouterGroup, c *container.Container) {
	chat := api.Group("/chat")
	{
		chat.GET("", c.ChatHandler.List)
		chat.POST("", c.ChatHandler.Create)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	{
		admin.POST("/login", c.AdminHandler.Login)
		admin.POST("/logout", c.AdminHandler.Logout)
		admin.GET("/status", c.AdminHandler.Status)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
