package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"civicconnect-api/internal/auth"
	"civicconnect-api/internal/grpcweb"
	"civicconnect-api/internal/handler"
	"civicconnect-api/internal/middleware"
	"civicconnect-api/internal/seed"
	"civicconnect-api/internal/session"
	"civicconnect-api/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	webPort := env("PORT", "8080")

	// the portal has exactly one account
	admin, err := auth.NewAdmin(env("ADMIN_USERNAME", "admin"), env("ADMIN_PASSWORD", "password123"))
	if err != nil {
		logger.Fatal("admin account", zap.Error(err))
	}

	// everything lives in memory for the lifetime of the process
	st := store.New()
	if env("SEED_DEMO_DATA", "true") == "true" {
		st = store.New(seed.Appointments(time.Now())...)
		logger.Info("seeded demo dataset", zap.Int("appointments", st.Len()))
	}

	sess := session.New(time.Now().Format("2006-01-02"))
	h := handler.New(st, sess, admin, secret)

	rl := middleware.NewRateLimiter(5, 10)
	bridge := grpcweb.New(h, sess, secret, rl, logger)

	httpSrv := &http.Server{
		Addr:    ":" + webPort,
		Handler: bridge.Handler(),
	}
	go func() {
		logger.Info("grpc-web listening", zap.String("port", webPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
