// 包 logger：检索引擎全链路共用的 slog 配置与获取入口
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Setup：按环境变量构建默认日志器
// 背景：提供方适配器、聚合、去重、排序与 HTTP 层都以事件名（snake_case）+ 键值对记录，
// 级别与格式必须全局一致才有可检索性；LOG_LEVEL 取 debug/warn/error，LOG_FORMAT 取 json 或文本。
// 约束：固定写标准错误；文件轮转、采样与外部投递交给部署环境，不在进程内做。
func Setup() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	format := strings.ToLower(os.Getenv("LOG_FORMAT"))
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}
	defaultLogger = slog.New(h)
	return defaultLogger
}

// L：默认日志器快捷访问；尚未 Setup 时惰性初始化，测试里免去显式装配
func L() *slog.Logger {
	if defaultLogger == nil {
		return Setup()
	}
	return defaultLogger
}
