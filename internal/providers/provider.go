// 包 providers：各内外部数据源到规范场地记录的适配层
// 背景：每个数据源（内置静态数据集、Google Places 风格、Foursquare 风格）包装为同构适配器，
// 由聚合层统一并发调度；适配器自带超时，故障在内部消化为分类条目随结果带回。
package providers

import (
	"context"
	"os"
	"strconv"
	"time"

	"court-api/internal/courts"
	"court-api/internal/geo"
)

// 文档注释：提供方适配器接口（统一契约）
// 约束：SearchNearby 对网络/超时类故障绝不 panic 也不返回 Go error——失败时返回空记录集
// 外加一个分类后的 *ProviderError；单条畸形响应项按条跳过，不否决整批。
type Provider interface {
	Name() string
	Source() courts.Source
	SearchNearby(ctx context.Context, origin geo.Point, radiusKm float64, sport courts.Sport) ([]courts.CourtRecord, *courts.ProviderError)
}

// 适配器单次调用的自带超时：默认 8s，可经环境变量调整但不超过 10s
const defaultTimeout = 8 * time.Second

// 文档注释：读取提供方超时（环境变量，秒）
// 背景：允许按部署环境微调；解析失败或越界回退默认值，上限 10s 防止拖垮整体时延。
func readTimeout() time.Duration {
	s := os.Getenv("PROVIDER_TIMEOUT_S")
	if s == "" {
		return defaultTimeout
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return defaultTimeout
	}
	if n > 10 {
		n = 10
	}
	return time.Duration(n) * time.Second
}
