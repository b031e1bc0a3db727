package middleware

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"booking-backend/internal/config"
	"booking-backend/internal/monitoring"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// tokenBucket refills refill_tokens every interval_ms up to capacity and
// takes one token per request. Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		local until_next = interval_ms - (now_ms - last_refill)
		if until_next < 0 then until_next = 0 end
		retry_after_ms = until_next
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// RateLimiter guards mutating routes with a token bucket per client and
// route, kept in Redis so every instance shares it.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	rdb    redis.Scripter
	logger *logrus.Logger
	now    func() time.Time
	key    func(c *fiber.Ctx) string
}

// NewRateLimiter returns a limiter; with rdb nil or the limiter disabled its
// handler lets every request through.
func NewRateLimiter(cfg config.RateLimitConfig, rdb redis.Scripter, logger *logrus.Logger) *RateLimiter {
	l := &RateLimiter{
		cfg:    cfg,
		rdb:    rdb,
		logger: logger,
		now:    time.Now,
	}
	l.key = l.clientRouteKey
	return l
}

func (l *RateLimiter) clientRouteKey(c *fiber.Ctx) string {
	ip := c.IP()
	if ip == "" {
		ip = "unknown"
	}
	return strings.Join([]string{l.cfg.Prefix, "ip", ip, "route", routeName(c)}, ":")
}

func (l *RateLimiter) Handler() fiber.Handler {
	if !l.cfg.Enabled || l.rdb == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		key := l.key(c)
		args := []interface{}{
			l.now().UnixMilli(),
			l.cfg.Capacity,
			l.cfg.RefillTokens,
			l.cfg.RefillInterval.Milliseconds(),
			int64(l.cfg.TTL / time.Second),
		}

		vals, err := tokenBucket.Run(c.Context(), l.rdb, []string{key}, args...).Result()
		if err != nil {
			// fail open
			l.logger.WithError(err).WithField("key", key).Warn("Rate limiter unavailable, allowing request")
			return c.Next()
		}

		arr, ok := vals.([]interface{})
		if !ok || len(arr) != 3 {
			l.logger.WithField("key", key).Warnf("Unexpected rate limiter result %#v", vals)
			return c.Next()
		}
		allowed := asInt64(arr[0]) == 1
		remaining := asInt64(arr[1])
		retryMs := asInt64(arr[2])

		c.Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Capacity))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			if secs < 0 {
				secs = 0
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(secs))
			monitoring.TrackRateLimited(routeName(c))
			l.logger.WithFields(logrus.Fields{
				"key":         key,
				"retry_after": secs,
			}).Info("Request rate limited")
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		}

		return c.Next()
	}
}

func routeName(c *fiber.Ctx) string {
	return c.Method() + " " + c.Route().Path
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	default:
		if n, err := strconv.ParseInt(fmt.Sprint(t), 10, 64); err == nil {
			return n
		}
	}
	return 0
}
