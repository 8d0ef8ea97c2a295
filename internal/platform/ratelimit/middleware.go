// Package ratelimit throttles requests per client address.
package ratelimit

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	apierrors "github.com/Apurer/storefront-api/internal/shared/errors"
)

// Settings tunes the limiter. One token is replenished every Interval up to
// Burst; limiters of idle clients are evicted after TTL.
type Settings struct {
	Interval  time.Duration
	Burst     int
	CacheSize int
	TTL       time.Duration
}

// Middleware rejects clients that exhausted their bucket with a 429 problem
// response and a Retry-After header. Clients are keyed by gin's ClientIP, so
// forwarded headers count only behind trusted proxies.
func Middleware(settings Settings) gin.HandlerFunc {
	if settings.CacheSize <= 0 {
		settings.CacheSize = 1024
	}
	if settings.TTL <= 0 {
		settings.TTL = 10 * time.Minute
	}
	if settings.Burst <= 0 {
		settings.Burst = 1
	}
	cache := expirable.NewLRU[string, *rate.Limiter](settings.CacheSize, nil, settings.TTL)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := cache.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(settings.Interval), settings.Burst)
			cache.Add(remoteAddr, limiter)
		}
		return limiter
	}

	return func(c *gin.Context) {
		limiter := getLimiter(c.ClientIP())

		reservation := limiter.Reserve()
		if !reservation.OK() {
			reject(c, 0)
			return
		}
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			reject(c, delay)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(settings.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(0, math.Floor(limiter.Tokens())))))
		c.Next()
	}
}

func reject(c *gin.Context, delay time.Duration) {
	if delay > 0 {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
	}
	apierrors.Respond(c, apierrors.ErrTooManyRequests)
}
