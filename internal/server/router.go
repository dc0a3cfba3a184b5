package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/skillhive/skillhive-backend/internal/handlers"
  "github.com/skillhive/skillhive-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  UserHandler         *handlers.UserHandler
  PostHandler         *handlers.PostHandler
  CommentHandler      *handlers.CommentHandler
  LikeHandler         *handlers.LikeHandler
  NotificationHandler *handlers.NotificationHandler
  ProgressHandler     *handlers.ProgressHandler
  PlanHandler         *handlers.PlanHandler
  SSEHandler          *handlers.SSEHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

  auth := router.Group("/api/auth")
  {
    auth.POST("/register", cfg.AuthHandler.Register)
    auth.POST("/login", cfg.AuthHandler.Login)
  }

  users := router.Group("/api/v1/users")
  {
    users.POST("", cfg.UserHandler.Create)
    users.GET("", cfg.UserHandler.GetAll)
    users.GET("/:id", cfg.UserHandler.GetByID)
    users.PUT("/:id", cfg.UserHandler.Update)
    users.DELETE("/:id", cfg.UserHandler.Delete)
    users.PUT("/:id/follow/:targetId", cfg.UserHandler.Follow)
    users.DELETE("/:id/unfollow/:targetId", cfg.UserHandler.Unfollow)
    users.GET("/:id/followers", cfg.UserHandler.GetFollowers)
    users.GET("/:id/following", cfg.UserHandler.GetFollowing)
    users.GET("/:id/suggestions", cfg.UserHandler.GetSuggestions)
    users.PUT("/:id/skills", cfg.UserHandler.UpdateSkills)
  }

  progress := router.Group("/api/learning-progress")
  {
    progress.GET("", cfg.ProgressHandler.GetAll)
    progress.POST("", cfg.ProgressHandler.Create)
    progress.GET("/user/:userId", cfg.ProgressHandler.GetByUserID)
    progress.GET("/latest/:userId/:progressName", cfg.ProgressHandler.GetLatest)
    progress.GET("/check-duplicate", cfg.ProgressHandler.CheckDuplicate)
    progress.PUT("/:id", cfg.ProgressHandler.Update)
    progress.DELETE("/:id", cfg.ProgressHandler.Delete)
  }

  plans := router.Group("/api/learning-plans")
  {
    plans.GET("", cfg.PlanHandler.GetAll)
    plans.POST("", cfg.PlanHandler.Create)
    plans.GET("/:id", cfg.PlanHandler.GetByID)
    plans.PUT("/:id", cfg.PlanHandler.Update)
    plans.DELETE("/:id", cfg.PlanHandler.Delete)
    plans.GET("/user/:userId/:progressName", cfg.PlanHandler.GetByUserAndProgressName)
    plans.GET("/latest/:userId/:progressName", cfg.PlanHandler.GetLatest)
    plans.PUT("/update-completed/:progressName", cfg.PlanHandler.UpdateCompleted)
  }

  posts := router.Group("/api/posts")
  {
    posts.GET("", cfg.PostHandler.GetAll)
    posts.POST("", cfg.PostHandler.Create)
    posts.GET("/:id", cfg.PostHandler.GetByID)
    posts.PUT("/:id", cfg.PostHandler.Update)
    posts.DELETE("/:id", cfg.PostHandler.Delete)
    posts.GET("/hashtag/:tag", cfg.PostHandler.SearchByHashtag)
  }

  comments := router.Group("/api/comments")
  {
    comments.POST("", cfg.CommentHandler.Create)
    comments.GET("/post/:postId", cfg.CommentHandler.GetByPostID)
    comments.PUT("/:id", cfg.CommentHandler.Update)
    comments.DELETE("/:id", cfg.CommentHandler.Delete)
  }

  likes := router.Group("/api/likes")
  {
    likes.POST("", cfg.LikeHandler.Create)
    likes.GET("/post/:postId", cfg.LikeHandler.GetByPostID)
    likes.GET("/post/:postId/count", cfg.LikeHandler.CountByPostID)
    likes.DELETE("/:id", cfg.LikeHandler.Delete)
  }

  notifications := router.Group("/api/notifications")
  {
    notifications.GET("/user/:userId", cfg.NotificationHandler.GetForUser)
    notifications.DELETE("/:id", cfg.NotificationHandler.Delete)
  }

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.POST("/api/auth/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/api/auth/logout", cfg.AuthHandler.Logout)
  protected.GET("/sse/stream", cfg.SSEHandler.Stream)

  return router
}
