package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/foodandtravelmag/mag-backend/internal/config"
	"github.com/foodandtravelmag/mag-backend/internal/handler"
	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
	"github.com/foodandtravelmag/mag-backend/pkg/jwt"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Auth         *handler.AuthHandler
	Post         *handler.PostHandler
	Vote         *handler.VoteHandler
	Category     *handler.CategoryHandler
	Announcement *handler.AnnouncementHandler
	Save         *handler.SaveHandler
	Follow       *handler.FollowHandler
	Magazine     *handler.MagazineHandler
	Admin        *handler.AdminHandler
}

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	h Handlers,
	authService service.AuthService,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
	cfg *config.Config,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.IsDevelopment() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api",
		middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()),
		middleware.Auth(authService, jwtManager),
	)

	// Public surface; the listing engine itself never 500s
	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)

	api.GET("/posts", h.Post.List)
	api.GET("/posts/:id", h.Post.Get)
	api.GET("/categories", h.Category.Tree)
	api.GET("/menu-sections", h.Category.Sections)
	api.GET("/announcements", h.Announcement.Active)
	api.GET("/magazines", h.Magazine.List)
	api.GET("/magazines/:slug", h.Magazine.Get)

	// Session or Bearer token required
	authed := api.Group("", middleware.RequireAuth())
	authed.GET("/me", h.Auth.Me)
	authed.POST("/posts", h.Post.Create)
	authed.POST("/votes", h.Vote.Cast)
	authed.POST("/posts/:id/save", h.Save.Save)
	authed.DELETE("/posts/:id/save", h.Save.Unsave)
	authed.GET("/saved-posts", h.Save.ListSaved)
	authed.GET("/followed-categories", h.Follow.ListFollowed)
	authed.GET("/categories/:id/follow", h.Follow.Status)
	authed.POST("/categories/:id/follow", h.Follow.Follow)
	authed.DELETE("/categories/:id/follow", h.Follow.Unfollow)

	// Owner-admin panel
	admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireOwnerAdmin(cfg.App.OwnerEmail))
	admin.GET("/settings", h.Admin.GetSettings)
	admin.POST("/settings", h.Admin.UpdateSettings)
	admin.PATCH("/settings", h.Admin.UpdateSettings)
	admin.GET("/users", h.Admin.ListUsers)
	admin.POST("/users/ban", h.Admin.BanUser)
	admin.DELETE("/users/:id", h.Admin.DeleteUser)
	admin.POST("/users/:id/moderator", h.Admin.ToggleModerator)
	admin.GET("/posts", h.Admin.ListPosts)
	admin.DELETE("/posts/:id", h.Admin.DeletePost)
	admin.POST("/purge-category", h.Admin.PurgeCategory)
	admin.GET("/sections", h.Admin.ListSections)
	admin.POST("/sections", h.Admin.CreateSection)
	admin.PATCH("/sections/:id", h.Admin.UpdateSection)
	admin.DELETE("/sections/:id", h.Admin.DeleteSection)
	admin.PATCH("/categories", h.Admin.UpdateCategory)
	admin.GET("/announcements", h.Admin.ListAnnouncements)
	admin.POST("/announcements", h.Admin.CreateAnnouncement)
	admin.PATCH("/announcements/:id", h.Admin.UpdateAnnouncement)
	admin.DELETE("/announcements/:id", h.Admin.DeleteAnnouncement)
	admin.POST("/magazines", h.Magazine.Create)
}
