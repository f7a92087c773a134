package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/marcafacil/booking-api/internal/httperr"
)

// Limitador de janela fixa em Redis, para as rotas públicas do marketplace.
// Sem Redis configurado (ou em caso de erro) deixa passar: a limitação é
// proteção, não funcionalidade.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRateLimiter(rdb *redis.Client, perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &RateLimiter{
		rdb:    rdb,
		limit:  perMinute,
		window: time.Minute,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rdb == nil {
			c.Next()
			return
		}

		key := "rl:public:" + c.ClientIP()

		res, err := fixedWindowScript.Run(
			c.Request.Context(),
			rl.rdb,
			[]string{key},
			rl.window.Milliseconds(),
		).Result()
		if err != nil {
			log.Println("rate limiter error:", err)
			c.Next()
			return
		}

		count, _ := res.(int64)
		if count > int64(rl.limit) {
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Demasiados pedidos. Tente mais tarde.")
			c.Abort()
			return
		}

		c.Next()
	}
}
