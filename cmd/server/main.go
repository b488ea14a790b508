package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/internal/bootstrap"
	"github.com/paulossjunior/dynamic-forms/internal/config"
	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/database"
	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/persistence"
	"github.com/paulossjunior/dynamic-forms/internal/interfaces/middleware"
	"github.com/paulossjunior/dynamic-forms/internal/interfaces/rest"
	"github.com/paulossjunior/dynamic-forms/pkg/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	conn, err := database.Open(startupCtx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("✅ Database connection established (%s)", conn.Dialect())

	if err := bootstrap.InitializeSchema(startupCtx, conn); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	store := persistence.NewStore(conn)
	svcMgr := services.NewServiceManager(store)
	log.Println("🔧 Service manager initialized")

	if cfg.SeedFile != "" {
		if _, err := bootstrap.SeedFromFile(startupCtx, store, svcMgr, cfg.SeedFile); err != nil {
			log.Printf("⚠️  Warning: Failed to apply seed file %s: %v", cfg.SeedFile, err)
		}
	}

	if cfg.AnalyticsRefreshCron != "" {
		if err := svcMgr.Analytics.StartScheduler(cfg.AnalyticsRefreshCron); err != nil {
			log.Printf("⚠️  Warning: Failed to start analytics scheduler: %v", err)
		}
	}

	var limiter *ratelimiter.MapLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimiter.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
		log.Printf("🚦 Rate limiting enabled (%.1f rps, burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	router := rest.NewRouter(svcMgr, rest.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		Limiter:        limiter,
		Metrics:        middleware.NewMetrics(),
		DB:             conn,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -9 can't be caught, so only SIGINT and SIGTERM are handled
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	svcMgr.Analytics.Stop()
	log.Println("🛑 Analytics scheduler stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	if err := conn.Close(); err != nil {
		log.Printf("⚠️  Failed to close database: %v", err)
	}
	log.Println("Server exiting")
}
