package location

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"court-api/internal/courts"
	"court-api/internal/logger"
	"court-api/internal/metrics"
)

// 位置缓存默认 TTL：5 分钟；可经 LOCATION_CACHE_TTL_S 调整
const defaultTTL = 5 * time.Minute

func readTTL() time.Duration {
	s := os.Getenv("LOCATION_CACHE_TTL_S")
	if s == "" {
		return defaultTTL
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return defaultTTL
	}
	return time.Duration(n) * time.Second
}

// 文档注释：位置服务
// 背景：组合解析器、两层缓存（进程内 → 可选 Redis）与反地理编码器；
// 缓存命中（条目年龄 < TTL）立即返回，不发任何解析调用。
// 约束：反地理失败只记日志并吞掉——坐标已足以支撑检索，绝不因补全失败而否决整次解析。
type Service struct {
	resolver Resolver
	mem      *memCache
	rds      *redisCache
	revgeo   *ReverseGeocoder
}

// NewService：rc 为 nil 时停用 Redis 层；rg 为 nil 时跳过反地理补全
func NewService(resolver Resolver, rc *redis.Client, rg *ReverseGeocoder) *Service {
	ttl := readTTL()
	s := &Service{
		resolver: resolver,
		mem:      newMemCache(ttl, 0),
		revgeo:   rg,
	}
	if rc != nil {
		s.rds = &redisCache{rc: rc, ttl: ttl}
	}
	return s
}

// Locate：解析调用方位置
// 路径：缓存命中 → 直接返回；未命中 → 解析 → 尽力反地理 → 写缓存（最后写入者胜出）
func (s *Service) Locate(ctx context.Context, clientIP string, useCache bool) (UserLocation, *courts.LocationError) {
	if clientIP == "" {
		return UserLocation{}, &courts.LocationError{Kind: courts.LocationPositionUnavailable, Message: "missing client ip"}
	}
	key := "loc:" + clientIP
	if useCache {
		if loc, ok := s.mem.Get(key); ok {
			metrics.LocationCacheHitsTotal.Inc()
			logger.L().Debug("location_cache_hit", "tier", "mem", "ip", clientIP)
			return loc, nil
		}
		if loc, ok := s.rds.Get(ctx, key); ok {
			metrics.LocationCacheHitsTotal.Inc()
			logger.L().Debug("location_cache_hit", "tier", "redis", "ip", clientIP)
			s.mem.Set(key, loc)
			return loc, nil
		}
		metrics.LocationCacheMissesTotal.Inc()
	}
	if s.resolver == nil {
		return UserLocation{}, &courts.LocationError{Kind: courts.LocationUnsupported, Message: "no resolver configured"}
	}
	loc, lerr := s.resolver.Resolve(ctx, clientIP)
	if lerr != nil {
		metrics.LocationResolveFailTotal.WithLabelValues(string(lerr.Kind)).Inc()
		logger.L().Warn("location_resolve_fail", "ip", clientIP, "kind", string(lerr.Kind), "msg", lerr.Message)
		return UserLocation{}, lerr
	}
	s.enrich(&loc)
	s.mem.Set(key, loc)
	s.rds.Set(ctx, key, loc)
	logger.L().Debug("location_resolved", "ip", clientIP, "city", loc.City)
	return loc, nil
}

// Invalidate：主动失效某调用方的缓存条目（进程内层）
func (s *Service) Invalidate(clientIP string) { s.mem.Invalidate("loc:" + clientIP) }

// enrich：尽力而为的反地理补全；失败吞掉
func (s *Service) enrich(loc *UserLocation) {
	if s.revgeo == nil {
		return
	}
	c, ok := s.revgeo.Nearest(loc.Point)
	if !ok {
		metrics.ReverseGeoFailTotal.Inc()
		logger.L().Debug("reverse_geo_miss", "lat", loc.Point.Lat, "lng", loc.Point.Lng)
		return
	}
	if loc.City == "" {
		loc.City = c.City
	}
	if loc.Region == "" {
		loc.Region = c.Region
	}
	if loc.Country == "" {
		loc.Country = c.Country
	}
}
