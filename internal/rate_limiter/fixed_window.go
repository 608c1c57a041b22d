package ratelimiter

import (
	"sync"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"go.uber.org/zap"
)

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter counts requests per client in fixed time windows.
// Once a client exceeds the configured request count the remaining window
// duration is returned so the caller can set a Retry-After header.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
	Enabled bool
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   cfg.RequestsPerTimeFrame,
		frame:   cfg.TimeFrame,
		Enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether the client identified by ip may proceed. When the
// limit is exceeded it returns false and the time left until the window
// resets.
func (l *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.clients[ip]
	if !ok || now.After(w.resetAt) {
		l.clients[ip] = &window{count: 1, resetAt: now.Add(l.frame)}
		return true, 0
	}

	if w.count >= l.limit {
		l.logger.Debugf("Rate limit exceeded for %s", ip)
		return false, time.Until(w.resetAt)
	}

	w.count++
	return true, 0
}
