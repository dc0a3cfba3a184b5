package main

import (
  "context"
  "fmt"
  "os"
  "time"
  goredis "github.com/skillhive/skillhive-backend/internal/clients/redis"
  "github.com/skillhive/skillhive-backend/internal/db"
  "github.com/skillhive/skillhive-backend/internal/handlers"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/middleware"
  "github.com/skillhive/skillhive-backend/internal/repos"
  "github.com/skillhive/skillhive-backend/internal/server"
  "github.com/skillhive/skillhive-backend/internal/services"
  "github.com/skillhive/skillhive-backend/internal/sse"
  "github.com/skillhive/skillhive-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  postRepo := repos.NewPostRepo(thePG, log)
  commentRepo := repos.NewCommentRepo(thePG, log)
  likeRepo := repos.NewLikeRepo(thePG, log)
  notificationRepo := repos.NewNotificationRepo(thePG, log)
  progressRepo := repos.NewLearningProgressRepo(thePG, log)
  planRepo := repos.NewLearningPlanRepo(thePG, log)

  // SSE
  log.Info("Setting up SSE hub now...")
  sseHub := sse.NewSSEHub(log)
  notificationBus, err := goredis.NewNotificationBus(log)
  if err != nil {
    log.Warn("Could not init redis notification bus, running single-instance", "error", err)
  } else {
    if fErr := notificationBus.StartForwarder(context.Background(), sseHub.Broadcast); fErr != nil {
      log.Warn("Could not start notification forwarder", "error", fErr)
    }
  }

  // Services
  log.Info("Setting up Services from main...")
  bucketService, err := services.NewBucketService(log)
  if err != nil {
    log.Warn("Could not init BucketService", "error", err)
  }
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, log, userRepo, bucketService, sseHub)
  notificationService := services.NewNotificationService(thePG, log, notificationRepo, sseHub, notificationBus)
  postService := services.NewPostService(thePG, log, postRepo, bucketService)
  commentService := services.NewCommentService(thePG, log, commentRepo, postRepo, userRepo, notificationService)
  likeService := services.NewLikeService(thePG, log, likeRepo, postRepo, userRepo, notificationService)
  planSyncService := services.NewPlanSyncService(thePG, log, planRepo)
  progressService := services.NewProgressService(thePG, log, progressRepo, planSyncService)
  planService := services.NewPlanService(thePG, log, planRepo, progressRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  postHandler := handlers.NewPostHandler(postService)
  commentHandler := handlers.NewCommentHandler(commentService)
  likeHandler := handlers.NewLikeHandler(likeService)
  notificationHandler := handlers.NewNotificationHandler(notificationService)
  progressHandler := handlers.NewProgressHandler(progressService)
  planHandler := handlers.NewPlanHandler(planService)
  sseHandler := handlers.NewSSEHandler(log, sseHub)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:         authHandler,
    AuthMiddleware:      authMiddleware,
    UserHandler:         userHandler,
    PostHandler:         postHandler,
    CommentHandler:      commentHandler,
    LikeHandler:         likeHandler,
    NotificationHandler: notificationHandler,
    ProgressHandler:     progressHandler,
    PlanHandler:         planHandler,
    SSEHandler:          sseHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
