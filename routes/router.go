package routes

import (
	"net/http"
	"strings"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ghostwire/ghostwire/config"
	"github.com/ghostwire/ghostwire/controllers"
	"github.com/ghostwire/ghostwire/middleware"
	"github.com/ghostwire/ghostwire/repository/mysql"
	"github.com/ghostwire/ghostwire/services"
	"github.com/ghostwire/ghostwire/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.GinZap(gl))
		r.Use(utils.RecoveryWithZap(gl))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	users := mysql.NewUserRepository(db)
	posts := mysql.NewPostRepository(db)
	comments := mysql.NewCommentRepository(db)
	interactionsRepo := mysql.NewInteractionRepository(db)
	communitiesRepo := mysql.NewCommunityRepository(db)
	admins := mysql.NewAdminRepository(db)

	interactionSvc := services.NewInteractionService(interactionsRepo, posts)
	feedSvc := services.NewFeedService(posts, users, interactionsRepo)
	communitySvc := services.NewCommunityService(communitiesRepo)
	activitySvc := services.NewActivityService(admins)
	adminSvc := services.NewAdminService(
		services.ConfigCredentialVerifier{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash},
		admins, users, posts, comments, communitiesRepo,
		activitySvc, cfg.AdminName,
	)

	authController := controllers.NewAuthController(users)
	postController := controllers.NewPostController(posts, comments, interactionSvc)
	feedController := controllers.NewFeedController(feedSvc)
	interactionController := controllers.NewInteractionController(interactionSvc)
	communityController := controllers.NewCommunityController(communitySvc)
	adminController := controllers.NewAdminController(adminSvc, activitySvc)

	// Dashboard login keeps its own top-level path and response contract.
	r.POST("/api/admin/login", middleware.RateLimitMiddleware(), adminController.Login)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AdminRequired())
	adminGroup.GET("/stats", adminController.Stats)
	adminGroup.GET("/activity", adminController.RecentActivity)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	api.GET("/feed", feedController.GetFeed)

	postsGroup := api.Group("/posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.GET("/:id", postController.GetPost)
	postsGroup.GET("/:id/comments", postController.ListComments)
	postsGroup.GET("/:id/stats", interactionController.GetPostStats)

	communitiesGroup := api.Group("/communities")
	communitiesGroup.GET("", communityController.ListCommunities)
	communitiesGroup.GET("/:id", communityController.GetCommunity)
	communitiesGroup.GET("/:id/members", communityController.ListMembers)

	// Public user profile and their posts
	api.GET("/users/:id", authController.GetUserPublic)
	api.GET("/users/:id/posts", postController.ListUserPosts)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/posts", postController.CreatePost)
	protected.DELETE("/posts/:id", postController.DeletePost)
	protected.POST("/posts/:id/comments", postController.CreateComment)
	protected.DELETE("/comments/:commentId", postController.DeleteComment)
	protected.POST("/posts/:id/interactions", interactionController.AddInteraction)
	protected.DELETE("/posts/:id/interactions/:kind", interactionController.RemoveInteraction)
	protected.POST("/communities", communityController.CreateCommunity)
	protected.PUT("/communities/:id", communityController.UpdateCommunity)
	protected.DELETE("/communities/:id", communityController.DeleteCommunity)
	protected.POST("/communities/:id/join", communityController.JoinCommunity)
	protected.POST("/communities/:id/leave", communityController.LeaveCommunity)
	protected.GET("/communities/:id/membership", communityController.GetMembership)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
