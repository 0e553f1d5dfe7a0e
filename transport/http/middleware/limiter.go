package middleware

import (
	"net/http"
	"paradise/shared/constant"
	"paradise/transport/http/response"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterStore hands out one token bucket per client. Each bucket refills
// maxRequests tokens per window and holds at most maxRequests.
type limiterStore struct {
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	maxRequests int
	window      time.Duration
}

func newLimiterStore(maxRequests, windowSeconds int) *limiterStore {
	if maxRequests <= 0 {
		maxRequests = 1
	}

	if windowSeconds <= 0 {
		windowSeconds = 1
	}

	return &limiterStore{
		limiters:    make(map[string]*rate.Limiter),
		maxRequests: maxRequests,
		window:      time.Duration(windowSeconds) * time.Second,
	}
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(s.window/time.Duration(s.maxRequests)), s.maxRequests)
		s.limiters[key] = limiter
	}

	return limiter
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			limiter := a.limiter.get(a.getClientIP(r) + "|" + a.getUA(r))
			allowed := limiter.Allow()

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(a.limiter.maxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, int(limiter.Tokens()))))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(int(a.limiter.window.Seconds())))

			if !allowed {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For may list a chain of proxies, the client comes first
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		if client, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(client)
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
