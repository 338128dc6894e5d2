// 包 search：单次检索的编排——位置解析、并发聚合、去重、排序到最终结果
package search

import (
	"context"
	"time"

	"court-api/internal/aggregate"
	"court-api/internal/courts"
	"court-api/internal/dedupe"
	"court-api/internal/geo"
	"court-api/internal/location"
	"court-api/internal/logger"
	"court-api/internal/metrics"
	"court-api/internal/providers"
	"court-api/internal/rank"
)

// 编排状态机取值
// 约束：Failed 只能从 resolving_location 进入（没有起点坐标无从检索）；
// 其余一切结局——包括全提供方零匹配——都终止于 Done，空记录列表是合法答案而非错误。
type State string

const (
	StateIdle          State = "idle"
	StateResolving     State = "resolving_location"
	StateAggregating   State = "aggregating"
	StateDeduplicating State = "deduplicating"
	StateRanking       State = "ranking"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// 文档注释：检索编排器
// 背景：组合位置服务、提供方管理器与回退策略为一次请求/响应周期；自身无状态，
// 可被并发请求共享（共享的只有只读注册表与位置缓存）。
type Orchestrator struct {
	loc    *location.Service
	mgr    *providers.Manager
	policy *Policy
}

func NewOrchestrator(loc *location.Service, mgr *providers.Manager, policy *Policy) *Orchestrator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Orchestrator{loc: loc, mgr: mgr, policy: policy}
}

// step：状态迁移统一记录
func step(from, to State) State {
	logger.L().Debug("search_state", "from", string(from), "to", string(to))
	return to
}

// Search：执行一次完整检索
// 背景：clientIP 仅在请求未携带起点坐标时用于位置解析；LocationError 是唯一的失败出口
func (o *Orchestrator) Search(ctx context.Context, q courts.SearchQuery, clientIP string) (courts.SearchResult, *courts.LocationError) {
	t0 := time.Now()
	metrics.SearchRequestsTotal.Inc()
	q = q.Normalize()
	st := StateIdle

	var origin geo.Point
	if q.Origin.Known {
		origin = q.Origin.Point
	} else {
		st = step(st, StateResolving)
		if o.loc == nil {
			metrics.SearchFailedTotal.Inc()
			step(st, StateFailed)
			return courts.SearchResult{}, &courts.LocationError{Kind: courts.LocationUnsupported, Message: "location service unavailable"}
		}
		loc, lerr := o.loc.Locate(ctx, clientIP, true)
		if lerr != nil {
			metrics.SearchFailedTotal.Inc()
			step(st, StateFailed)
			return courts.SearchResult{}, lerr
		}
		origin = loc.Point
	}

	st = step(st, StateAggregating)
	active := o.mgr.Active(q.ActiveProviders)
	agg := aggregate.Fan(ctx, active, origin, q.RadiusKm, q.Sport)
	o.policy.Assess(active, agg)

	// 距离相对当前起点即时重算；坐标未知的记录保持距离未知，排序时垫底
	for i := range agg.Records {
		if agg.Records[i].Position.Known {
			agg.Records[i].DistanceKnown = true
			agg.Records[i].DistanceKm = geo.DistanceKm(origin, agg.Records[i].Position.Point)
			agg.Records[i].Geohash = geo.EncodeGeohash(agg.Records[i].Position.Point.Lat, agg.Records[i].Position.Point.Lng, 7)
		}
	}

	st = step(st, StateDeduplicating)
	merged := dedupe.Dedupe(agg.Records)

	st = step(st, StateRanking)
	ranked := rank.Rank(merged, q.SortKey, q.MaxResults)

	contrib := make(map[courts.Source]int, len(active))
	for _, r := range merged {
		contrib[r.SourceProvider]++
	}
	res := courts.SearchResult{
		Records:       ranked,
		Contributions: contrib,
		Errors:        agg.Errors,
		ElapsedMs:     time.Since(t0).Milliseconds(),
	}
	if len(ranked) == 0 {
		metrics.SearchEmptyTotal.Inc()
	}
	metrics.SearchDurationMs.Observe(float64(res.ElapsedMs))
	step(st, StateDone)
	logger.L().Info("search_done",
		"records", len(ranked),
		"errors", len(agg.Errors),
		"sport", string(q.Sport),
		"radius_km", q.RadiusKm,
		"elapsed_ms", res.ElapsedMs,
	)
	return res, nil
}
