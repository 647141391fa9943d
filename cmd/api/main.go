package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/lostfound-api/api/swagger"
	"github.com/noah-isme/lostfound-api/internal/handler"
	"github.com/noah-isme/lostfound-api/internal/realtime"
	"github.com/noah-isme/lostfound-api/internal/repository"
	"github.com/noah-isme/lostfound-api/internal/router"
	"github.com/noah-isme/lostfound-api/internal/service"
	"github.com/noah-isme/lostfound-api/migrations"
	"github.com/noah-isme/lostfound-api/pkg/cache"
	"github.com/noah-isme/lostfound-api/pkg/config"
	"github.com/noah-isme/lostfound-api/pkg/database"
	"github.com/noah-isme/lostfound-api/pkg/jobs"
	"github.com/noah-isme/lostfound-api/pkg/logger"
	"github.com/noah-isme/lostfound-api/pkg/storage"
)

// @title Lost & Found API
// @version 1.0.0
// @description Campus lost and found reporting backend
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, migrations.FS, logr); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	metrics := service.NewMetricsService()
	validate := validator.New()
	checks := map[string]handler.Pinger{"database": db}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			// the listing still works uncached
			logr.Warn("redis unavailable, report cache disabled", zap.Error(err))
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(cacheRepo.Ping)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.ReportTTL, logr, redisClient != nil)

	uploader, mediaDir, err := newUploader(cfg.Media)
	if err != nil {
		return fmt.Errorf("init media storage: %w", err)
	}

	var hub *realtime.Hub
	if cfg.Realtime.Enabled {
		hub = realtime.NewHub(logr, metrics.SetWSConnections)
		go hub.Run(ctx)
	}

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	activitySvc := service.NewActivityService(activityRepo, logr)
	var publisher service.NotificationPublisher
	if hub != nil {
		publisher = hub
	}
	notificationSvc := service.NewNotificationService(notificationRepo, publisher, metrics, validate, logr)
	authSvc := service.NewAuthService(userRepo, activitySvc, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	userSvc := service.NewUserService(userRepo, validate, logr)
	claimSvc := service.NewClaimService(claimRepo, reportRepo, notificationSvc, activitySvc, validate, logr)
	commentSvc := service.NewCommentService(commentRepo, reportRepo, validate, logr)

	// the cleanup queue and the report service reference each other
	var reportSvc *service.ReportService
	cleanup := jobs.NewQueue("media-cleanup", func(ctx context.Context, job jobs.Job) error {
		return reportSvc.CleanupMedia(ctx, job)
	}, jobs.QueueConfig{
		Workers:    cfg.Cleanup.Workers,
		MaxRetries: cfg.Cleanup.Retries,
		Logger:     logr,
	})
	reportSvc = service.NewReportService(reportRepo, claimRepo, notificationSvc, activitySvc, validate, logr, service.ReportServiceOptions{
		Uploader:       uploader,
		Cache:          cacheSvc,
		Cleanup:        cleanup,
		Metrics:        metrics,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
		CacheTTL:       cfg.Cache.ReportTTL,
	})
	cleanup.Start(ctx)
	defer cleanup.Stop()

	authHandler := handler.NewAuthHandler(authSvc)
	engine := router.New(router.Options{
		Env:             cfg.Env,
		APIPrefix:       cfg.APIPrefix,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AuthRateLimit:   cfg.RateLimit.AuthRequests,
		RateLimitPeriod: cfg.RateLimit.Period,
		MediaDir:        mediaDir,
		Logger:          logr,
		Metrics:         metrics,
		Tokens:          authSvc,
	}, router.Handlers{
		Auth:         authHandler,
		User:         handler.NewUserHandler(userSvc, authHandler),
		Report:       handler.NewReportHandler(reportSvc, activitySvc, cfg.Media.MaxUploadBytes),
		Claim:        handler.NewClaimHandler(claimSvc),
		Comment:      handler.NewCommentHandler(commentSvc),
		Notification: handler.NewNotificationHandler(notificationSvc, hub, cfg.CORS.AllowedOrigins, logr),
		Metrics:      handler.NewMetricsHandler(metrics, checks),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logr.Warn("graceful shutdown failed", zap.Error(err))
		}
	}()

	logr.Info("server starting",
		zap.String("addr", server.Addr),
		zap.String("env", cfg.Env),
		zap.String("media_driver", cfg.Media.Driver),
		zap.Bool("realtime", hub != nil),
		zap.Bool("report_cache", redisClient != nil),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logr.Info("server stopped")
	return nil
}

// newUploader returns the configured media backend and, for local storage, the
// directory to serve under /media.
func newUploader(cfg config.MediaConfig) (storage.Uploader, string, error) {
	switch cfg.Driver {
	case config.MediaDriverS3:
		uploader, err := storage.NewS3Uploader(cfg)
		return uploader, "", err
	case config.MediaDriverLocal, "":
		uploader, err := storage.NewLocalUploader(cfg.LocalDir, cfg.PublicURL)
		if err != nil {
			return nil, "", err
		}
		return uploader, uploader.Dir(), nil
	default:
		return nil, "", fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
}
