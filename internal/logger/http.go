// HTTP 访问日志：对 /search 等入口统一记录方法、路径、状态、字节数与时延
package logger

import (
	"log/slog"
	"net/http"
	"time"
)

// statusWriter：捕获已写状态码与字节数
// 约束：标准库 ResponseWriter 不回读已写状态，只能在包装层截获
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// AccessMiddleware：访问日志中间件
// 背景：检索耗时主要由最慢提供方决定，access 行的 duration_ms 与 search_done 事件对照
// 即可区分提供方拖慢与本地开销；不读请求体。
// 约束：这里记录的是 RemoteAddr；代理头里的真实调用方 IP 由 api 层另行提取使用。
func AccessMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: 200}
			start := time.Now()
			next.ServeHTTP(sw, r)
			l.Debug("http_access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", r.RemoteAddr,
			)
		})
	}
}
