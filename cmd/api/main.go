package main

import (
	"context"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jukeboxd.com/m/v2/internal/service"
	"jukeboxd.com/m/v2/internal/spotify"
	"jukeboxd.com/m/v2/internal/store"
)

func main() {
	var logger *zap.Logger
	var err error

	if os.Getenv("DEBUG") == "true" {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		err = godotenv.Load("../../.env")
		if err != nil {
			logger.Warn("Warning: .env file not found. Using system environment variables.")
		}
	} else {
		logger, err = zap.NewProduction()
		if err != nil {
			panic(err)
		}
	}
	defer logger.Sync()

	// Initialize loggers for all packages
	spotify.InitializeLogger(logger)
	store.InitializeLogger(logger)
	service.InitializeLogger(logger)

	ctx := context.Background()

	firebaseConfig := &firebase.Config{ProjectID: os.Getenv("GOOGLE_PROJECT_ID")}
	app, err := firebase.NewApp(ctx, firebaseConfig)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase app", zap.Error(err))
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase auth client", zap.Error(err))
	}
	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Firestore client", zap.Error(err))
	}

	documentStore := store.New(firestoreClient)
	defer documentStore.Close()

	handler := service.NewHandler(documentStore)

	router := gin.New()

	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	// CORS headers for the web frontends
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	service.RegisterRoutes(router, handler, service.AuthMiddleware(authClient))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		logger.Info("Defaulting to port", zap.String("port", port))
	}

	logger.Info("Jukeboxd API server starting", zap.String("port", port))
	err = router.Run(":" + port)
	if err != nil {
		logger.Fatal("Failed to run API server", zap.Error(err))
	}
}
