package httpmiddleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a fixed per-minute request budget per client IP.
// Counters live in redis so the budget holds across replicas. When redis is
// unreachable the limiter admits traffic; availability wins over enforcement
// for this workload.
type RateLimiter struct {
	client *redis.Client
	perMin int
}

// NewRateLimiter creates a limiter allowing perMinute requests per IP.
func NewRateLimiter(client *redis.Client, perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 120
	}
	return &RateLimiter{client: client, perMin: perMinute}
}

// Gin returns the enforcement middleware.
func (l *RateLimiter) Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		key := "entrytrack:ratelimit:" + ip + ":" + time.Now().Format("200601021504")

		n, err := l.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable, admitting request: %v", err)
			c.Next()
			return
		}
		if n == 1 {
			l.client.Expire(c.Request.Context(), key, 2*time.Minute)
		}
		if n > int64(l.perMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}
