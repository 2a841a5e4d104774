package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if !cfg.EnvFileLoaded {
		zlog.Info("no .env file found, using process environment")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.ExposeErrorDetails {
		zlog.Warn("EXPOSE_ERROR_DETAILS is on: raw database errors are returned to clients")
	}

	// ======================================================
	// 🗄️ DATABASE
	// ======================================================
	db, err := dbpkg.Open(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}

	// ======================================================
	// 📝 AUDIT
	// ======================================================
	sinks := []audit.Sink{audit.New(db)}

	var publisher *audit.RedisPublisher
	if cfg.RedisURL != "" {
		publisher, err = audit.NewRedisPublisher(context.Background(), cfg.RedisURL, cfg.AuditChannel)
		if err != nil {
			zlog.Warn("redis unavailable, audit fan-out disabled", zap.Error(err))
		} else {
			sinks = append(sinks, publisher)
			zlog.Info("audit fan-out enabled", zap.String("channel", cfg.AuditChannel))
		}
	}

	dispatcher := audit.NewDispatcher(zlog.Named("audit"), sinks...)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(db, cfg, zlog, dispatcher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen", zap.Error(err))
		}
	}()

	// ======================================================
	// 🛑 GRACEFUL SHUTDOWN
	// ======================================================
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zlog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}

	if err := dispatcher.Close(shutdownCtx); err != nil {
		zlog.Warn("audit queue not fully drained", zap.Error(err))
	}

	if publisher != nil {
		_ = publisher.Close()
	}

	if err := dbpkg.Close(db); err != nil {
		zlog.Error("database close", zap.Error(err))
	}
}
