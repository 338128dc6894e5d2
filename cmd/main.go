// 程序入口：仅负责读取配置、初始化依赖并启动服务；API 注册在 internal/api 以便扩展
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"court-api/internal/api"
	"court-api/internal/location"
	"court-api/internal/logger"
	"court-api/internal/metrics"
	"court-api/internal/middleware"
	"court-api/internal/providers"
	"court-api/internal/search"
	"court-api/internal/utils"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()
	l.Debug("log_init_ok")

	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = "/api"
	}
	l.Debug("config_api_base", "base", apiBase)

	// 文档注释：GeoIP 城市库（可选）
	// 背景：请求未携带坐标时按调用方 IP 解析起点；库缺失时位置解析停用，
	// 此类请求将以 Unsupported 拒绝，携带坐标的请求不受影响。
	var resolver location.Resolver
	geoipReady := false
	geoipPath := os.Getenv("GEOIP_DB")
	if geoipPath == "" {
		geoipPath = filepath.Join("data", "geoip", "GeoLite2-City.mmdb")
	}
	if r, err := location.NewGeoIPResolver(geoipPath); err == nil {
		resolver = r
		geoipReady = true
		defer r.Close()
		l.Info("geoip_open_ok", "path", geoipPath)
	} else {
		l.Warn("geoip_open_error", "path", geoipPath, "err", err)
	}

	rc := utils.OpenRedisFromEnv()
	if rc == nil {
		l.Info("redis_disabled")
	} else {
		if err := rc.Ping(context.Background()).Err(); err != nil {
			l.Error("redis_ping_error", "err", err)
		} else {
			l.Info("redis_ping_ok")
		}
	}

	loc := location.NewService(resolver, rc, location.NewReverseGeocoder(nil))

	// 文档注释：提供方注册（顺序即优先级）
	// 背景：静态数据集必须最先注册——去重保留高优先级来源副本、外部全灭时兜底都依赖这一点；
	// 在线来源仅在凭据在位时注册。
	mgr := providers.NewManager()
	mgr.Register(providers.NewStaticAdapter(nil))
	if key := os.Getenv("GOOGLE_PLACES_KEY"); key != "" {
		mgr.Register(providers.NewGoogleAdapter(key, os.Getenv("GOOGLE_PLACES_BASE"), nil))
	}
	if key := os.Getenv("FOURSQUARE_KEY"); key != "" {
		mgr.Register(providers.NewFoursquareAdapter(key, os.Getenv("FOURSQUARE_BASE"), nil))
	}

	orc := search.NewOrchestrator(loc, mgr, search.DefaultPolicy())

	mux := http.NewServeMux()
	apiMux := api.BuildRoutes(orc, mgr.Names, geoipReady)
	mux.Handle(apiBase+"/", http.StripPrefix(apiBase, apiMux))
	mux.Handle(apiBase+"/metrics", metrics.Handler())

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.Wrap(handler)
	srv := &http.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	var g errgroup.Group
	g.Go(func() error {
		l.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		l.Info("shutdown_begin")
		return srv.Shutdown(shutCtx)
	})
	if err := g.Wait(); err != nil {
		l.Error("server_error", "err", err)
		os.Exit(1)
	}
	l.Info("shutdown_done")
}
