package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"referral_backend/internal/api"
	"referral_backend/internal/repository"
	"referral_backend/internal/service"
	"referral_backend/pkg/auth"
	"referral_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	tokenAuth := auth.NewTokenAuth(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(repo, tokenAuth)
	referralService := service.NewReferralService(repo, repo)
	purchaseService := service.NewPurchaseService(repo, repo)
	dashboardService := service.NewDashboardService(repo, repo)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	api.NewHealthRoutes(router, repo)

	a := router.Group("/api")
	api.NewAuthRoutes(a, authService, tokenAuth)
	api.NewReferralRoutes(a, referralService, tokenAuth)
	api.NewPurchaseRoutes(a, purchaseService, tokenAuth)
	api.NewDashboardRoutes(a, dashboardService, tokenAuth)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
