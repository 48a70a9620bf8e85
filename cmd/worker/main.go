package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"entrytrack/internal/config"
	"entrytrack/internal/queue"
	"entrytrack/internal/store"
)

// tallyTTL keeps per-date counters around long enough for the dashboard's
// recent history without accumulating keys forever.
const tallyTTL = 14 * 24 * time.Hour

// The worker consumes recorded-entry events and maintains per-date tallies
// in redis (entrytrack:tally:<date>).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "entrytrack:entries")
	}

	events, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for entry events...")
	for evt := range events {
		if evt.StudentID == "" || evt.EntryDate == "" {
			continue
		}
		key := "entrytrack:tally:" + evt.EntryDate
		n, err := redisClient.Client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("tally update failed for %s: %v", evt.EntryDate, err)
			continue
		}
		if n == 1 {
			redisClient.Client.Expire(ctx, key, tallyTTL)
		}
		log.Printf("entry for %s on %s, daily total now %d", evt.StudentID, evt.EntryDate, n)
	}

	log.Println("worker stopped")
}
