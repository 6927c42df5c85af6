package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/api/handler"
	"github.com/TrialEnjoyer/yallburru-backend/internal/api/router"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/database"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
	applogger "github.com/TrialEnjoyer/yallburru-backend/pkg/logger"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/mailer"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialise logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("org_timezone", cfg.Org.Timezone),
	)

	// Already validated by config.Load, so this cannot fail.
	loc, err := time.LoadLocation(cfg.Org.Timezone)
	if err != nil {
		logger.Fatal("failed to load org timezone", zap.Error(err))
	}

	// 3. Connect to the database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("database connected")

	// 3.1 Run schema migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to obtain underlying sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. Connect to Redis (optional: degrade instead of aborting startup)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, compliance cache, rate limiting and token blacklist disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Initialise the JWT manager and mailer
	jwtMgr := jwt.NewManager(&cfg.Auth)
	mail := mailer.NewMailer(&cfg.Mail, logger)

	// 6. Dependency injection: Repository -> Service -> Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, rdb, jwtMgr, mail, loc, logger)
	h := handler.NewHandler(svc, jwtMgr, rdb, loc)

	// 6.1 Start the reminder scheduler in the background
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Reminder.Enabled {
		go svc.Reminder.Run(schedCtx)
	} else {
		logger.Info("reminder scheduler disabled by config")
	}

	// 7. Build the router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Start the HTTP server (with graceful shutdown)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 9. Wait for a termination signal, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received, draining...", zap.String("signal", sig.String()))

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
