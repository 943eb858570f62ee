package container

import (
	"context"
	"fmt"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/seed"
	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/pkg/token"

	adminHandler "lawfirm-backend/internal/domains/admin/handler"

	"lawfirm-backend/internal/domains/blog"
	blogHandler "lawfirm-backend/internal/domains/blog/handler"
	blogRepo "lawfirm-backend/internal/domains/blog/repository"
	blogService "lawfirm-backend/internal/domains/blog/service"

	"lawfirm-backend/internal/domains/chat"
	chatHandler "lawfirm-backend/internal/domains/chat/handler"
	chatRepo "lawfirm-backend/internal/domains/chat/repository"
	chatService "lawfirm-backend/internal/domains/chat/service"

	"lawfirm-backend/internal/domains/contact"
	contactHandler "lawfirm-backend/internal/domains/contact/handler"
	contactRepo "lawfirm-backend/internal/domains/contact/repository"
	contactService "lawfirm-backend/internal/domains/contact/service"

	"lawfirm-backend/internal/domains/user"
	userRepo "lawfirm-backend/internal/domains/user/repository"
	userService "lawfirm-backend/internal/domains/user/service"

	"github.com/rs/zerolog/log"
)

// Container holds the application's dependency graph: config, the in-memory
// repositories (sole owners of entity state, constructed once at process
// start), the services, and the HTTP handlers. Nothing here survives a
// restart.
type Container struct {
	Config       *config.Config
	TokenManager *token.Manager
	SessionCfg   middleware.SessionConfig

	// Repositories
	BlogRepo    blog.Repository
	ContactRepo contact.Repository
	ChatRepo    chat.Repository
	UserRepo    user.Repository

	// Services
	BlogService    blog.Service
	ContactService contact.Service
	ChatService    chat.Service
	UserService    user.Service

	// Handlers
	BlogHandler    *blogHandler.BlogHandler
	ContactHandler *contactHandler.ContactHandler
	ChatHandler    *chatHandler.ChatHandler
	AdminHandler   *adminHandler.AdminHandler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========== STEP 1: CONFIGURATION ==========
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ========== STEP 2: INFRASTRUCTURE ==========
	c.TokenManager = token.NewManager(cfg.Session.Secret, cfg.Session.TokenTTLHours)

	c.SessionCfg = middleware.DefaultSessionConfig()
	c.SessionCfg.CookieSecure = cfg.Session.CookieSecure

	// ========== STEP 3: REPOSITORIES ==========
	c.BlogRepo = blogRepo.NewMemoryRepository()
	c.ContactRepo = contactRepo.NewMemoryRepository()
	c.ChatRepo = chatRepo.NewMemoryRepository()
	c.UserRepo = userRepo.NewMemoryRepository()

	if err := seed.Load(context.Background(), c.BlogRepo); err != nil {
		return nil, fmt.Errorf("failed to seed blog posts: %w", err)
	}
	log.Info().Msg("Repositories initialized")

	// ========== STEP 4: SERVICES ==========
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo)
	c.ChatService = chatService.NewChatService(c.ChatRepo)
	c.UserService = userService.NewUserService(c.UserRepo)

	// ========== STEP 5: HANDLERS ==========
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService, c.SessionCfg)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.ChatHandler = chatHandler.NewChatHandler(c.ChatService)
	c.AdminHandler = adminHandler.NewAdminHandler(cfg.Admin.Password, c.TokenManager, c.SessionCfg)

	log.Info().Msg("Container initialized")
	return c, nil
}
