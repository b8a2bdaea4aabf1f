package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter limita requisições por IP de cliente com token bucket
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	mu      sync.Mutex
	clients map[string]*clientLimiter
	now     func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter cria o limitador; perSecond <= 0 desliga o limite
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		ttl:     10 * time.Minute,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Enabled indica se há limite configurado
func (r *RateLimiter) Enabled() bool {
	return r != nil && r.limit > 0
}

// Handler retorna o middleware gin
func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Enabled() {
			c.Next()
			return
		}

		if !r.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Muitas requisições, tente novamente em instantes",
				"code":  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cl, ok := r.clients[key]
	if !ok {
		r.evictStale(now)
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// evictStale remove clientes inativos; chamado com o lock adquirido
func (r *RateLimiter) evictStale(now time.Time) {
	for k, cl := range r.clients {
		if now.Sub(cl.lastSeen) > r.ttl {
			delete(r.clients, k)
		}
	}
}
