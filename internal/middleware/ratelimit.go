package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/depotsync/pkg/api"
)

// visitor limiter одного клиента
type visitor struct {
	lastSeen time.Time
	limiter  *rate.Limiter
}

// RateLimiter ограничивает частоту запросов по ключу клиента (IP).
// Неактивные клиенты удаляются фоновой очисткой.
type RateLimiter struct {
	visitors map[string]*visitor
	logger   *slog.Logger
	done     chan struct{}
	now      func() time.Time
	ttl      time.Duration
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	stopOnce sync.Once
}

// NewRateLimiter allows perSecond requests per client with bursts of burst.
// Clients idle for ttl are forgotten.
func NewRateLimiter(perSecond float64, burst int, ttl time.Duration, logger *slog.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		logger:   logger,
		done:     make(chan struct{}),
		now:      time.Now,
		ttl:      ttl,
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}

	go rl.cleanup()
	return rl
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	now := rl.now()
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.evict()
		}
	}
}

// evict удаляет клиентов, неактивных дольше ttl
func (rl *RateLimiter) evict() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.ttl)
	removed := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			removed++
		}
	}
	if removed > 0 {
		rl.logger.Debug("Rate limiter cleanup", "removed", removed, "remaining", len(rl.visitors))
	}
	return removed
}

// RateLimit создает middleware поверх limiter. Ключ клиента = IP.
// Клиенту возвращается 429: движок синхронизации считает его временной ошибкой.
func RateLimit(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Retry-After", "1")
				WriteError(w, http.StatusTooManyRequests, api.ErrorResponse{
					Code:    "rate_limited",
					Message: "rate limit exceeded, please try again later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// первый адрес в списке = реальный клиент
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
