// 包 aggregate：向全部参与提供方并发扇出检索并汇合全量结果
package aggregate

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"court-api/internal/courts"
	"court-api/internal/geo"
	"court-api/internal/logger"
	"court-api/internal/providers"
)

// 聚合产物：记录按提供方注册顺序拼接，错误与原始计数随结果带回
type Result struct {
	Records []courts.CourtRecord
	Errors  []courts.ProviderError
	Raw     map[courts.Source]int
}

// 文档注释：扇出/汇合聚合
// 背景：所有适配器并发调用，等待全部落定（成功或失败）而非首错即断——总时延受制于最慢
// 适配器而非各家之和；单家故障只贡献空记录集与一条分类错误，互不影响。
// 约束：各适配器自带超时，引擎层不再叠加第二层超时；完成先后不得影响拼接顺序，
// 结果按注册顺位写入固定槽位后顺序合并。
func Fan(ctx context.Context, list []providers.Provider, origin geo.Point, radiusKm float64, sport courts.Sport) Result {
	t0 := time.Now()
	type slot struct {
		recs []courts.CourtRecord
		err  *courts.ProviderError
	}
	slots := make([]slot, len(list))
	var g errgroup.Group
	for i, p := range list {
		i, p := i, p
		g.Go(func() error {
			recs, perr := p.SearchNearby(ctx, origin, radiusKm, sport)
			slots[i] = slot{recs: recs, err: perr}
			return nil
		})
	}
	_ = g.Wait()

	out := Result{Raw: make(map[courts.Source]int, len(list))}
	for i, p := range list {
		s := slots[i]
		out.Records = append(out.Records, s.recs...)
		out.Raw[p.Source()] += len(s.recs)
		if s.err != nil {
			out.Errors = append(out.Errors, *s.err)
		}
	}
	logger.L().Debug("aggregate_done",
		"providers", len(list),
		"records", len(out.Records),
		"errors", len(out.Errors),
		"duration_ms", time.Since(t0).Milliseconds(),
	)
	return out
}
