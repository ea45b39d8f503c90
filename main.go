package main

import (
	"log/slog"
	"os"

	api "vidtube-backend/cmd/api"
	userdomain "vidtube-backend/internal/user/domain"
	userRepo "vidtube-backend/internal/user/repository"
	"vidtube-backend/internal/user/token"
	userUsecase "vidtube-backend/internal/user/usecase"
	"vidtube-backend/pkg/cloudinary"
	"vidtube-backend/pkg/config"
	"vidtube-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}, &userdomain.Subscription{}, &userdomain.Video{}, &userdomain.WatchHistoryEntry{}); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	users := userRepo.NewUserRepository(db)
	subscriptions := userRepo.NewSubscriptionRepository(db)
	watchHistory := userRepo.NewWatchHistoryRepository(db)

	// Token issuer with distinct access/refresh secrets
	issuer := token.NewIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)

	// Media upload service
	uploader, err := cloudinary.NewService(cfg)
	if err != nil {
		slog.Error("failed to initialize upload service", "error", err)
		os.Exit(1)
	}

	// Initialize use case and HTTP handler
	uc := userUsecase.NewUserUsecase(users, subscriptions, watchHistory, issuer, uploader, cfg)
	handler := api.NewHandler(uc, cfg)

	slog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
