package middleware

import (
	"fmt"
	"net/http"
	"time"

	"asada-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit is a fixed-window per-IP limiter backed by Redis so the
// count holds across instances. INCR + EXPIRE runs in a pipeline: the
// first hit in a window sets the TTL, later hits just count.
func RateLimit(rdb *redis.Client, requestsPerMinute int) gin.HandlerFunc {
	log := logger.WithComponent("middleware")

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), time.Now().UTC().Format("200601021504"))

		pipe := rdb.Pipeline()
		count := pipe.Incr(c, key)
		pipe.Expire(c, key, time.Minute)
		if _, err := pipe.Exec(c); err != nil {
			// Redis being down must not take the API with it.
			log.Warn("Rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count.Val() > int64(requestsPerMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
