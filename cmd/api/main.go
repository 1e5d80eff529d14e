package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"homeserve/internal/config"
	"homeserve/internal/database"
	"homeserve/internal/middleware"
	"homeserve/internal/modules/auth"
	"homeserve/internal/modules/booking"
	"homeserve/internal/modules/business"
	"homeserve/internal/modules/catalog"
	"homeserve/internal/modules/contact"
	"homeserve/internal/modules/review"
	jwtsvc "homeserve/internal/pkg/jwt"
	"homeserve/internal/pkg/logger"
	"homeserve/internal/pkg/mail"
	"homeserve/internal/pkg/storage"
	"homeserve/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger.Init()
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.L().Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)
	businessRepo := repository.NewBusinessRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		mailer = mail.ConsoleMailer{}
	}

	var uploader storage.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = storage.NewS3Uploader(context.Background(), cfg.S3)
		if err != nil {
			logger.L().Fatal("s3 uploader init failed", zap.Error(err))
		}
	} else {
		uploader = storage.NewLocalUploader("media")
	}

	authService := auth.NewService(userRepo, resetRepo, j, mailer, cfg.FrontendURL, cfg.ResetTokenTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo, uploader)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, catalogRepo)
	reviewHandler := review.NewHandler(reviewService)

	contactService := contact.NewService(contactRepo, mailer, uploader, cfg.ContactRecipient)
	contactHandler := contact.NewHandler(contactService)

	businessService := business.NewService(businessRepo, uploader)
	businessHandler := business.NewHandler(businessService)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		if _, err := authService.PurgeExpiredResetTokens(context.Background()); err != nil {
			logger.L().Warn("reset token purge failed", zap.Error(err))
		}
	}); err != nil {
		logger.L().Fatal("scheduler setup failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Static("/media", "media")

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		businessHandler.RegisterRoutes(v1)
		contactHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			businessHandler.RegisterProtectedRoutes(protected)
		}
	}

	logger.L().Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
