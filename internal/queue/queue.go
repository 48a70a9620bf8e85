// Package queue carries recorded-entry events to the tally worker. Demo-mode
// acknowledgments never reach the queue; only persisted rows are announced.
package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// EntryEvent announces one persisted entry row.
type EntryEvent struct {
	EntryID   int64  `json:"entry_id"`
	StudentID string `json:"student_id"`
	EntryDate string `json:"entry_date"`
}

// Queue is the abstraction over the redis and in-memory backends.
type Queue interface {
	Publish(ctx context.Context, evt EntryEvent) error
	Consume(ctx context.Context) (<-chan EntryEvent, error)
}

// InMemory is a channel-backed queue for dev and tests.
type InMemory struct {
	ch chan EntryEvent
}

// NewInMemory creates a bounded in-memory queue.
func NewInMemory(size int) *InMemory {
	return &InMemory{ch: make(chan EntryEvent, size)}
}

// Publish enqueues an event.
func (q *InMemory) Publish(ctx context.Context, evt EntryEvent) error {
	select {
	case q.ch <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume returns a channel for workers.
func (q *InMemory) Consume(ctx context.Context) (<-chan EntryEvent, error) {
	out := make(chan EntryEvent)
	go func() {
		defer close(out)
		for {
			select {
			case evt := <-q.ch:
				out <- evt
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// RedisQueue is a redis list with LPUSH/BRPOP semantics and JSON bodies.
type RedisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue builds a queue on the given list key.
func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = "entrytrack:entries"
	}
	return &RedisQueue{client: client, key: key}
}

// Publish enqueues an event.
func (q *RedisQueue) Publish(ctx context.Context, evt EntryEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, body).Err()
}

// Consume streams events using BRPOP until the context ends. Entries that
// fail to decode are dropped rather than wedging the stream.
func (q *RedisQueue) Consume(ctx context.Context) (<-chan EntryEvent, error) {
	out := make(chan EntryEvent)
	go func() {
		defer close(out)
		for {
			res, err := q.client.BRPop(ctx, 5*time.Second, q.key).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				continue
			}
			if len(res) != 2 {
				continue
			}
			var evt EntryEvent
			if err := json.Unmarshal([]byte(res[1]), &evt); err == nil {
				out <- evt
			}
		}
	}()
	return out, nil
}
