// 包 classify：原始场地元数据到规范运动类型的确定性映射
package classify

import (
	"strings"

	"court-api/internal/courts"
)

// 文档注释：运动关键词表
// 背景：类别提示与名称匹配共用同一份关键词；按 courts.AllSports 固定顺序遍历，
// 保证同输入在任何调用顺序下输出一致（去重确定性依赖于此）。
var sportKeywords = map[courts.Sport][]string{
	courts.SportTennis:     {"tennis", "tennis court", "tennis club"},
	courts.SportBasketball: {"basketball", "basketball court", "hoops"},
	courts.SportPickleball: {"pickleball", "pickleball court"},
	courts.SportVolleyball: {"volleyball", "volleyball court", "beach volleyball"},
}

// normalizeHint：类别提示归一化
// 约束：Google 风格的 place type 用下划线分词（tennis_court），统一还原为空格小写形态再比较
func normalizeHint(h string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), "_", " "))
}

// Sport：分类入口（纯函数，无副作用）
// 匹配优先级：1) 类别提示与关键词精确相等 2) 名称包含关键词 3) 兜底 multi-sport
func Sport(name string, categoryHints []string) courts.Sport {
	normalized := make([]string, 0, len(categoryHints))
	for _, h := range categoryHints {
		normalized = append(normalized, normalizeHint(h))
	}
	for _, s := range courts.AllSports {
		for _, kw := range sportKeywords[s] {
			for _, h := range normalized {
				if h == kw {
					return s
				}
			}
		}
	}
	lower := strings.ToLower(name)
	for _, s := range courts.AllSports {
		for _, kw := range sportKeywords[s] {
			if strings.Contains(lower, kw) {
				return s
			}
		}
	}
	return courts.SportMulti
}

// Matches：记录是否满足运动过滤条件
// 约束：multi-sport 场地视为满足任意单运动过滤；空过滤放行全部
func Matches(recorded courts.Sport, filter courts.Sport) bool {
	if filter == courts.SportAny {
		return true
	}
	if recorded == courts.SportMulti {
		return true
	}
	return recorded == filter
}
