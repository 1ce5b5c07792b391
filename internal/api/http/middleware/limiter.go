package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

const (
	limiterMax    = 20
	limiterWindow = 30 * time.Second
)

// NewLimiterWithRedis rate-limits per client IP with a sliding window
// backed by the shared Redis connection, so limits hold across instances.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	return limiter.New(limiter.Config{
		Storage:           fiberredis.NewFromConnection(rdb),
		Max:               limiterMax,
		Expiration:        limiterWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
