// 包 rank：合并后结果集的排序与截断
package rank

import (
	"sort"

	"court-api/internal/courts"
)

// 文档注释：排序与截断
// 背景：只在全量合并集合上执行一次排序，提供方完成先后对最终顺序无影响。
// 比较器：距离升序（距离未知排在所有已知之后）；评分降序（缺失按 0）；
// 价格升序（缺失视为 +∞，排最后）。同值保持原有相对顺序（稳定排序）。
func Rank(records []courts.CourtRecord, key courts.SortKey, maxResults int) []courts.CourtRecord {
	out := make([]courts.CourtRecord, len(records))
	copy(out, records)
	switch key {
	case courts.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case courts.SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			pi, iok := out[i].PricePerHour, out[i].PriceKnown
			pj, jok := out[j].PricePerHour, out[j].PriceKnown
			if iok != jok {
				return iok
			}
			if !iok {
				return false
			}
			return pi < pj
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].DistanceKnown != out[j].DistanceKnown {
				return out[i].DistanceKnown
			}
			if !out[i].DistanceKnown {
				return false
			}
			return out[i].DistanceKm < out[j].DistanceKm
		})
	}
	if maxResults <= 0 {
		maxResults = courts.DefaultMaxResults
	}
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
