package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sewago/sewago/internal/pkg/config"
	"github.com/sewago/sewago/internal/pkg/database"
	"github.com/sewago/sewago/internal/pkg/health"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/middleware"
	natspkg "github.com/sewago/sewago/internal/pkg/nats"
	nrpkg "github.com/sewago/sewago/internal/pkg/newrelic"
	"github.com/sewago/sewago/services/identity/gateway"
	"github.com/sewago/sewago/services/identity/handler"
	httpHandler "github.com/sewago/sewago/services/identity/handler/http"
	"github.com/sewago/sewago/services/identity/repository"
	"github.com/sewago/sewago/services/identity/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "identity-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/identity.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	identityRepo := repository.NewIdentityRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway (identity provider verification + NATS events)
	identityGW, err := gateway.NewIdentityGW(context.Background(), configs, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize identity gateway", zap.Error(err))
	}

	// Initialize usecase
	identityUC := usecase.NewIdentityUC(identityRepo, identityGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(identityUC)
	userHandler := httpHandler.NewUserHandler(identityUC)

	Handler := handler.NewHandler(authHandler, userHandler, identityRepo, redisClient, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
