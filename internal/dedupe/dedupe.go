// 包 dedupe：跨提供方近重复场地合并
package dedupe

import (
	"strings"

	"court-api/internal/courts"
	"court-api/internal/geo"
	"court-api/internal/logger"
	"court-api/internal/metrics"
)

// 近重复判定的邻近阈值（千米）
const proximityKm = 0.1

// 文档注释：去重（保序，先见先留）
// 背景：同一真实场地常被多个来源以略异的名称收录。候选与任一已接受记录满足其一即丢弃：
// (a) 名称忽略大小写完全相等；(b) 球面距离 < 100m 且一方名称是另一方的忽略大小写子串。
// (b) 要求邻近与名称重叠同时成立，避免只因共享一个泛词就把同一广场里的两家无关场地合并。
// 约束：坐标未知的记录只能经 (a) 命中；提供方按固定优先级拼接（静态数据集最先），
// 重复项的幸存副本因此确定性地来自高优先级来源。幂等：dedupe(dedupe(X)) == dedupe(X)。
func Dedupe(records []courts.CourtRecord) []courts.CourtRecord {
	accepted := make([]courts.CourtRecord, 0, len(records))
	dropped := 0
	for _, cand := range records {
		dup := false
		for i := range accepted {
			if isDuplicate(cand, accepted[i]) {
				dup = true
				logger.L().Debug("dedupe_dropped",
					"id", cand.ID,
					"kept", accepted[i].ID,
					"name", cand.Name,
				)
				break
			}
		}
		if dup {
			dropped++
			continue
		}
		accepted = append(accepted, cand)
	}
	if dropped > 0 {
		metrics.DedupeDroppedTotal.Add(float64(dropped))
	}
	return accepted
}

func isDuplicate(a, b courts.CourtRecord) bool {
	an := strings.ToLower(strings.TrimSpace(a.Name))
	bn := strings.ToLower(strings.TrimSpace(b.Name))
	if an == bn {
		return true
	}
	if !a.Position.Known || !b.Position.Known {
		return false
	}
	if geo.DistanceKm(a.Position.Point, b.Position.Point) >= proximityKm {
		return false
	}
	return strings.Contains(an, bn) || strings.Contains(bn, an)
}
