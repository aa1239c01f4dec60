package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecobytes/site-api/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SubmissionLimiter caps form submissions per client in a fixed window,
// counting in Redis so every API instance shares the budget.
type SubmissionLimiter struct {
	cache  Cache
	limit  int
	window time.Duration
	logger *logging.SafeLogger
}

// NewSubmissionLimiter allows limit submissions per client every window.
func NewSubmissionLimiter(cache Cache, limit int, window time.Duration, logger *logging.SafeLogger) *SubmissionLimiter {
	return &SubmissionLimiter{
		cache:  cache,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

func submissionKey(form, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", form, client)
}

// Allow counts one submission of form by client and reports whether it is
// within the limit. Redis failures let the submission through.
func (l *SubmissionLimiter) Allow(ctx context.Context, form, client string) bool {
	key := submissionKey(form, client)

	n, err := l.cache.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("submission limiter unavailable, allowing request",
			zap.String("form", form),
			zap.Error(err))
		return true
	}
	// NX keeps the running window and repairs a key left without a TTL
	if err := l.cache.ExpireNX(ctx, key, l.window).Err(); err != nil {
		l.logger.Warn("failed to set submission window, allowing request",
			zap.String("form", form),
			zap.Error(err))
		return true
	}

	if n > int64(l.limit) {
		l.logger.Warn("submission limiter rejected request",
			zap.String("form", form),
			zap.String("client", client),
			zap.Int64("count", n),
			zap.Int("limit", l.limit))
		return false
	}
	return true
}

// NewOutboundLimiter returns a token bucket allowing rps requests per second
// with a burst of at least one.
func NewOutboundLimiter(rps float64) *rate.Limiter {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
