package main

import (
	"context"
	"log"

	"roomspace-backend/config"
	"roomspace-backend/handlers"
	"roomspace-backend/logger"
	"roomspace-backend/repository"
	"roomspace-backend/service"
	"roomspace-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat, "roomspace-backend")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Stores: Postgres when a database is configured, in-memory otherwise
	var (
		users     repository.UserStore
		rooms     repository.RoomStore
		designs   repository.DesignStore
		favorites repository.FavoriteStore
	)
	if cfg.MockMode() {
		zapLogger.Warn("running with in-memory store, data will not persist")
		mem := repository.NewMemoryStore()
		users = mem.Users()
		rooms = mem.Rooms()
		designs = mem.Designs()
		favorites = mem.Favorites()
	} else {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			zapLogger.Fatal("failed to create database pool", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			zapLogger.Fatal("failed to connect to database", zap.Error(err))
		}
		zapLogger.Info("connected to database")

		users = repository.NewUserRepository(pool)
		rooms = repository.NewRoomRepository(pool)
		designs = repository.NewDesignRepository(pool)
		favorites = repository.NewFavoriteRepository(pool)
	}

	scanStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		zapLogger.Fatal("failed to initialize scan storage", zap.Error(err))
	}

	authService := service.NewAuthService(
		service.AuthWithUserStore(users),
		service.AuthWithJWTSecret(cfg.JWTSecret),
		service.AuthWithLogger(zapLogger),
	)

	designOpts := []service.DesignServiceOption{
		service.DesignWithLogger(zapLogger),
	}
	if cfg.GeminiAPIKey != "" {
		genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			zapLogger.Fatal("failed to create generation client", zap.Error(err))
		}
		defer genaiClient.Close()
		designOpts = append(designOpts,
			service.DesignWithGenerationClient(service.NewGeminiGenerationClient(genaiClient, cfg.GeminiModel)))
	} else {
		zapLogger.Warn("GEMINI_API_KEY not set, design generation uses fallback layouts")
	}
	designService := service.NewDesignService(designOpts...)

	productService := service.NewProductService(
		service.ProductWithHTTPClient(resty.New()),
		service.ProductWithAmazonCredentials(cfg.AmazonAccessKey, cfg.AmazonSecretKey, cfg.AmazonPartnerTag, cfg.AmazonAPIEndpoint),
		service.ProductWithLogger(zapLogger),
	)

	router := handlers.NewRouter(handlers.RouterDeps{
		Config:         cfg,
		AuthService:    authService,
		AuthHandler:    handlers.NewAuthHandler(authService, cfg, zapLogger),
		RoomHandler:    handlers.NewRoomHandler(rooms, scanStorage, zapLogger),
		DesignHandler:  handlers.NewDesignHandler(designs, rooms, designService, zapLogger),
		ProductHandler: handlers.NewProductHandler(productService, favorites, designs, zapLogger),
	})

	zapLogger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := router.Run(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}
