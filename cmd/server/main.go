package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/event"
	httpAdapter "github.com/Vantrieu2000/rental-management-app-sub002/adapters/http"
	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/media_storage"
	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/persistence"
	authUC "github.com/Vantrieu2000/rental-management-app-sub002/internal/application/usecase/auth"
	roomUC "github.com/Vantrieu2000/rental-management-app-sub002/internal/application/usecase/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/config"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/auth"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/tracing"
)

func main() {
	fmt.Println("Start Rental Management API Server...")

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing is optional, skipped when no collector is configured
	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "rental-management-api")
		if err != nil {
			log.Fatalf("FATAL: cannot init tracing: %v", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	roomRepo := persistence.NewPostgresRoomRepo(dbPool, appLogger)
	roomCache := persistence.NewRedisRoomCache(redisClient, cfg.Search.SnapshotTTL, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}

	// Use Cases
	snapshots := roomUC.NewSnapshotProvider(roomRepo, roomCache, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	createRoomUseCase := roomUC.NewCreateRoomUseCase(roomRepo, kafkaClient, snapshots, appLogger)
	updateRoomUseCase := roomUC.NewUpdateRoomUseCase(roomRepo, kafkaClient, snapshots, appLogger)
	deleteRoomUseCase := roomUC.NewDeleteRoomUseCase(roomRepo, kafkaClient, snapshots, appLogger)
	getRoomUseCase := roomUC.NewGetRoomUseCase(roomRepo)
	listRoomsUseCase := roomUC.NewListRoomsUseCase(roomRepo)
	uploadPhotoUseCase := roomUC.NewUploadRoomPhotoUseCase(roomRepo, uploader, snapshots, appLogger)
	searchRoomsUseCase := roomUC.NewSearchRoomsUseCase(snapshots, cfg.Search.MaxResults, appLogger)

	liveSearch := roomUC.NewLiveSearchManager(
		snapshots,
		cfg.DebounceDelay(),
		cfg.Search.MaxResults,
		cfg.Search.SessionIdleTimeout,
		appLogger,
	)
	defer liveSearch.Close()

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	roomHandler := httpAdapter.NewRoomHandler(
		createRoomUseCase,
		updateRoomUseCase,
		deleteRoomUseCase,
		getRoomUseCase,
		listRoomsUseCase,
		uploadPhotoUseCase,
	)
	searchHandler := httpAdapter.NewRoomSearchHandler(searchRoomsUseCase, liveSearch)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				rooms := adminPrivate.Group("/rooms")
				{
					rooms.POST("", roomHandler.CreateRoom)
					rooms.GET("", roomHandler.ListRooms)
					rooms.GET("/search", searchHandler.SearchRooms)
					rooms.GET("/:id", roomHandler.GetRoom)
					rooms.PUT("/:id", roomHandler.UpdateRoom)
					rooms.DELETE("/:id", roomHandler.DeleteRoom)
					rooms.POST("/:id/photos", roomHandler.UploadRoomPhoto)
				}

				sessions := adminPrivate.Group("/search-sessions")
				{
					sessions.POST("", searchHandler.CreateSession)
					sessions.GET("/:id", searchHandler.GetSessionState)
					sessions.PUT("/:id/query", searchHandler.UpdateSessionQuery)
					sessions.PUT("/:id/filters", searchHandler.UpdateSessionFilters)
					sessions.DELETE("/:id/filters", searchHandler.ClearSessionFilters)
					sessions.DELETE("/:id", searchHandler.CloseSession)
				}
			}
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
