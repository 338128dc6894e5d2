// 包 api：集中注册 HTTP API 路由以解耦主入口，便于后续扩展与替换
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"court-api/internal/courts"
	"court-api/internal/search"
)

// 解析访问者 IP：优先常见反向代理头；保证在多层代理场景下稳定获取源 IP
func getClientIP(r *http.Request) string {
	h := r.Header
	if x := h.Get("x-forwarded-for"); x != "" {
		return strings.TrimSpace(strings.Split(x, ",")[0])
	}
	if x := h.Get("cf-connecting-ip"); x != "" {
		return x
	}
	if x := h.Get("x-real-ip"); x != "" {
		return x
	}
	if x := h.Get("x-client-ip"); x != "" {
		return x
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		host = host[:i]
	}
	return strings.Trim(host, "[]")
}

// parseQuery：HTTP 参数 → 检索请求
// 约束：lat/lng 必须成对出现才构成已知起点；数值解析失败按缺省处理，不报 400
func parseQuery(r *http.Request) courts.SearchQuery {
	q := r.URL.Query()
	var sq courts.SearchQuery
	latS, lngS := q.Get("lat"), q.Get("lng")
	if latS != "" && lngS != "" {
		lat, errA := strconv.ParseFloat(latS, 64)
		lng, errB := strconv.ParseFloat(lngS, 64)
		if errA == nil && errB == nil {
			sq.Origin = courts.KnownPosition(lat, lng)
		}
	}
	if s := q.Get("radius_km"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			sq.RadiusKm = f
		}
	}
	sq.Sport = courts.ParseSport(q.Get("sport"))
	if s := q.Get("max"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			sq.MaxResults = n
		}
	}
	sq.SortKey = courts.ParseSortKey(q.Get("sort"))
	if s := q.Get("providers"); s != "" {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sq.ActiveProviders = append(sq.ActiveProviders, name)
			}
		}
	}
	return sq
}

// 位置错误 → HTTP 状态码映射
func locationStatus(kind courts.LocationErrorKind) int {
	switch kind {
	case courts.LocationPermissionDenied:
		return http.StatusForbidden
	case courts.LocationTimeout:
		return http.StatusGatewayTimeout
	case courts.LocationUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// 构建并返回 API 路由：独立 ServeMux 便于在主入口挂载到 /api 前缀
// 背景：检索结果即引擎输出原样序列化；位置错误以分类与消息返回，提供方错误内嵌在结果中
func BuildRoutes(orc *search.Orchestrator, providerNames func() []string, geoipReady bool) *http.ServeMux {
	apiMux := http.NewServeMux()

	apiMux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		sq := parseQuery(r)
		res, lerr := orc.Search(r.Context(), sq, getClientIP(r))
		if lerr != nil {
			writeJSON(w, locationStatus(lerr.Kind), map[string]any{
				"error": map[string]string{"kind": string(lerr.Kind), "message": lerr.Message},
			})
			return
		}
		writeJSON(w, http.StatusOK, res)
	})

	apiMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"providers": providerNames(),
			"geoip":     geoipReady,
		})
	})

	return apiMux
}
