// 包 middleware：入口限流
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"court-api/internal/logger"
)

// 文档注释：令牌桶限流中间件（每秒）
// 背景：外部提供方调用有配额成本，流量峰值时对入口限速以免把配额烧在突发上；
// 按环境变量开关与速率配置。
// 约束：简化实现，不做队列排队，仅丢弃并返回 429。
type TokenBucket struct {
	capacity int
	tokens   int
	lastSec  int64
	mu       sync.Mutex
}

func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	nowSec := time.Now().Unix()
	if tb.lastSec != nowSec {
		tb.lastSec = nowSec
		tb.tokens = tb.capacity
	}
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Wrap：按 RATE_LIMIT_RPS 启用限流；未配置或非法值时直通
func Wrap(next http.Handler) http.Handler {
	rps := 0
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			rps = n
		}
	}
	if rps <= 0 {
		return next
	}
	tb := &TokenBucket{capacity: rps}
	logger.L().Info("ratelimit_enabled", "rps", rps)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tb.allow() {
			logger.L().Debug("ratelimit_reject", "path", r.URL.Path, "ip", r.RemoteAddr)
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
