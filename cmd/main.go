package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	httpContext "github.com/aldonunez05/sb-hacks/internal/api/http/context"
	"github.com/aldonunez05/sb-hacks/internal/api/http/router"
	httpServer "github.com/aldonunez05/sb-hacks/internal/api/http/server"
	redisCache "github.com/aldonunez05/sb-hacks/internal/cache/redis"
	"github.com/aldonunez05/sb-hacks/internal/config"
	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/model"
	"github.com/aldonunez05/sb-hacks/internal/repository/postgres"
	"github.com/aldonunez05/sb-hacks/internal/scheduler"
	"github.com/aldonunez05/sb-hacks/internal/server"
	"github.com/aldonunez05/sb-hacks/internal/service"
	minioStorage "github.com/aldonunez05/sb-hacks/internal/storage/minio"
	s3Storage "github.com/aldonunez05/sb-hacks/internal/storage/s3"
	"github.com/aldonunez05/sb-hacks/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const limiterCleanupInterval = 10 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatal("failed to load timezone", "error", err)
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	images, err := newImageStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize image storage", "error", err, "driver", cfg.StorageDriver)
	}

	m := metrics.New()
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	ctxMgr := httpContext.NewManager()

	promptRepo := postgres.NewPromptRepository(db)
	dailyPromptRepo := postgres.NewDailyPromptRepository(db)
	userRepo := postgres.NewUserRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)

	// A nil interface disables caching; a typed nil pointer would not.
	var leaderboardCache model.LeaderboardCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, leaderboard cache disabled", "error", err, "addr", cfg.Redis.Addr)
		} else {
			leaderboardCache = redisCache.NewLeaderboardCache(rdb, cfg.Redis.LeaderboardTTL)
		}
	}

	catalog := service.NewCatalog(promptRepo, logger)
	publisher := service.NewPublisher(catalog, dailyPromptRepo, loc, time.Now, m, logger)
	challenges := service.NewChallenge(dailyPromptRepo, loc)
	ledger := service.NewLedger(submissionRepo, dailyPromptRepo, images, leaderboardCache, loc, time.Now, m, logger)
	feed := service.NewFeed(submissionRepo, userRepo, dailyPromptRepo, logger)
	social := service.NewSocial(submissionRepo, userRepo, time.Now, m, logger)
	leaderboard := service.NewLeaderboard(userRepo, leaderboardCache, logger)
	users := service.NewUsers(userRepo, submissionRepo, dailyPromptRepo, logger)

	if cfg.App.SeedCatalog {
		n, err := catalog.Seed(ctx, service.DefaultPrompts)
		if err != nil {
			logger.Fatal("failed to seed prompt catalog", "error", err)
		}
		logger.Info("prompt catalog seeded", "inserted", n)
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(publisher, scheduler.Options{
			Cron:       cfg.Scheduler.Cron,
			RunOnStart: cfg.Scheduler.RunOnStart,
			Location:   loc,
		}, logger)
		if err != nil {
			logger.Fatal("failed to initialize scheduler", "error", err)
		}
		sched.Start()
	}

	r := router.New(router.Services{
		Challenges:  challenges,
		Publisher:   publisher,
		Submissions: ledger,
		Feed:        feed,
		Social:      social,
		Leaderboard: leaderboard,
		Users:       users,
	}, tokenManager, ctxMgr, m, router.Options{
		AdminToken:     cfg.App.AdminToken,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Location:       loc,
	}, logger)
	r.Limiter().StartCleanup(ctx, limiterCleanupInterval)

	apiServer := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(apiServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", apiServer.Address())
	}
	if sched != nil {
		if err := sched.Stop(); err != nil {
			logger.Error("error during scheduler shutdown", "error", err)
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newImageStorage(ctx context.Context, cfg *config.Config) (model.ImageStorage, error) {
	switch cfg.StorageDriver {
	case "s3":
		client, err := s3Storage.NewR2Client(ctx, s3Storage.Options{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			AccessKeySecret: cfg.R2.AccessKeySecret,
			Bucket:          cfg.R2.Bucket,
			CDNBaseURL:      cfg.R2.CDNBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		client, err := minioStorage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
