package providers

import (
	"context"
	"strings"
	"time"

	"court-api/internal/classify"
	"court-api/internal/courts"
	"court-api/internal/geo"
	"court-api/internal/logger"
	"court-api/internal/metrics"
)

// 文档注释：静态数据集适配器
// 背景：内置精选场地数据，零网络时延、永不失败；作为外部提供方全部不可用时的兜底来源，
// 必须最先注册以便去重保留其副本。
// 约束：数据集只读共享于并发检索；返回记录为值拷贝，距离等临时字段由上层填充。
type StaticAdapter struct {
	data []courts.CourtRecord
}

// NewStaticAdapter：data 为 nil 时使用内置数据集
func NewStaticAdapter(data []courts.CourtRecord) *StaticAdapter {
	if data == nil {
		data = defaultDataset
	}
	return &StaticAdapter{data: data}
}

func (a *StaticAdapter) Name() string          { return "static" }
func (a *StaticAdapter) Source() courts.Source { return courts.SourceStatic }

// SearchNearby：按运动与半径过滤内置数据
// 约束：坐标未知的记录无法做半径判定，只要运动匹配即保留（展示与按名去重仍然有效）
func (a *StaticAdapter) SearchNearby(ctx context.Context, origin geo.Point, radiusKm float64, sport courts.Sport) ([]courts.CourtRecord, *courts.ProviderError) {
	t0 := time.Now()
	metrics.ProviderRequestsTotal.WithLabelValues(a.Name()).Inc()
	var out []courts.CourtRecord
	for _, rec := range a.data {
		if !a.matches(rec, sport) {
			continue
		}
		if rec.Position.Known && geo.DistanceKm(origin, rec.Position.Point) > radiusKm {
			continue
		}
		out = append(out, rec)
	}
	metrics.ProviderRecordsTotal.WithLabelValues(a.Name()).Add(float64(len(out)))
	if len(out) > 0 {
		metrics.ProviderSuccessTotal.WithLabelValues(a.Name()).Inc()
	}
	metrics.ProviderDurationMs.WithLabelValues(a.Name()).Observe(float64(time.Since(t0).Milliseconds()))
	logger.L().Debug("static_search_done", "sport", string(sport), "radius_km", radiusKm, "records", len(out))
	return out, nil
}

// matches：运动枚举匹配，或运动词出现在名称/地址/描述文本中
func (a *StaticAdapter) matches(rec courts.CourtRecord, sport courts.Sport) bool {
	if classify.Matches(rec.Sport, sport) {
		return true
	}
	term := string(sport)
	for _, field := range []string{rec.Name, rec.Address, rec.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
