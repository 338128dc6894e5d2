// 包 metrics：集中定义检索引擎的 Prometheus 指标，供各层直接引用并在主入口统一暴露
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_search_requests_total",
		Help: "Total number of search requests",
	})
	SearchDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "courtapi_search_duration_ms",
		Help:    "End-to-end search duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	})
	SearchEmptyTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_search_empty_total",
		Help: "Total number of searches returning zero records",
	})
	SearchFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_search_failed_total",
		Help: "Total number of searches rejected by a location error",
	})
	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courtapi_provider_requests_total",
		Help: "Total provider SearchNearby invocations",
	}, []string{"provider"})
	ProviderSuccessTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courtapi_provider_success_total",
		Help: "Total provider invocations returning at least one record",
	}, []string{"provider"})
	ProviderFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courtapi_provider_fail_total",
		Help: "Total provider invocations ending in a recorded provider error",
	}, []string{"provider"})
	ProviderDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "courtapi_provider_duration_ms",
		Help:    "Provider SearchNearby duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	}, []string{"provider"})
	ProviderRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courtapi_provider_records_total",
		Help: "Total raw records contributed per provider before dedupe",
	}, []string{"provider"})
	ProviderItemSkipTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courtapi_provider_item_skip_total",
		Help: "Total malformed response items skipped individually",
	}, []string{"provider"})
	DedupeDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_dedupe_dropped_total",
		Help: "Total records dropped as cross-provider duplicates",
	})
	LocationCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_location_cache_hits_total",
		Help: "Total location cache hits (any tier)",
	})
	LocationCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_location_cache_misses_total",
		Help: "Total location cache misses causing a fresh resolution",
	})
	LocationResolveFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courtapi_location_resolve_fail_total",
		Help: "Total failed location resolutions by error kind",
	}, []string{"kind"})
	ReverseGeoFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courtapi_reverse_geo_fail_total",
		Help: "Total swallowed reverse-geocode failures",
	})
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDurationMs)
	prometheus.MustRegister(SearchEmptyTotal)
	prometheus.MustRegister(SearchFailedTotal)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderSuccessTotal)
	prometheus.MustRegister(ProviderFailTotal)
	prometheus.MustRegister(ProviderDurationMs)
	prometheus.MustRegister(ProviderRecordsTotal)
	prometheus.MustRegister(ProviderItemSkipTotal)
	prometheus.MustRegister(DedupeDroppedTotal)
	prometheus.MustRegister(LocationCacheHitsTotal)
	prometheus.MustRegister(LocationCacheMissesTotal)
	prometheus.MustRegister(LocationResolveFailTotal)
	prometheus.MustRegister(ReverseGeoFailTotal)
}

// 文档注释：返回 Prometheus 指标监听器
// 背景：统一暴露注册指标到 /metrics 路径，供 Prometheus 抓取；在主入口挂载。
func Handler() http.Handler { return promhttp.Handler() }
