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
	"github.com/joho/godotenv"

	"entrytrack/internal/auth"
	"entrytrack/internal/config"
	"entrytrack/internal/entry"
	"entrytrack/internal/httpmiddleware"
	"entrytrack/internal/queue"
	"entrytrack/internal/server"
	"entrytrack/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func run(cfg config.App) error {
	// An unreachable store at boot is not fatal: requests degrade to demo
	// mode. Only a malformed connection string aborts startup.
	db, err := store.NewDB(cfg.DatabaseURL(), cfg.DBPoolSize)
	if err != nil {
		if db == nil {
			return err
		}
		log.Printf("warning: db not reachable: %v", err)
	}
	defer db.Close()

	if cfg.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Migrate(ctx); err != nil {
			log.Printf("warning: migrate failed: %v", err)
		} else if err := db.Seed(ctx); err != nil {
			log.Printf("warning: seed failed: %v", err)
		}
		cancel()
	}

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "entrytrack:entries")
	}

	entries := entry.NewService(entry.NewRepository(db.Client), q)
	users := auth.NewUserStore(db.Client)

	limiter := httpmiddleware.NewRateLimiter(redisClient.Client, cfg.RateLimitPerMin)
	router := server.New(server.Options{
		JWTSecret: []byte(cfg.JWTSecret),
		Entries:   entries,
		Users:     users,
		PingDB:    db.Client.PingContext,
		Redis:     redisClient,
		Middleware: []gin.HandlerFunc{
			httpmiddleware.RequestID(),
			httpmiddleware.CORS(),
			httpmiddleware.SecurityHeaders(),
			limiter.Gin(),
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("server exited")
	return nil
}
