package search

import (
	"court-api/internal/aggregate"
	"court-api/internal/logger"
	"court-api/internal/providers"
)

// 提供方在回退策略中的角色
type Role string

const (
	// 兜底来源：外部提供方全灭时仍需给出其匹配子集
	RoleFallback Role = "fallback"
	// 可选来源：故障或零结果只意味着“结果更少”
	RoleOptional Role = "optional"
)

// 文档注释：回退策略表
// 背景：回退关系不靠调用处的层层兜底，而是集中在一张策略表里显式声明：静态数据集是兜底
// 来源，外部在线来源一律可选。提供方层面的任何状况（配额、断网、超时）都不会使检索失败——
// 只要兜底来源在场，其匹配子集就是合法答案。
type Policy struct {
	roles map[string]Role
}

// DefaultPolicy：static 兜底，其余可选
func DefaultPolicy() *Policy {
	return &Policy{roles: map[string]Role{
		"static": RoleFallback,
	}}
}

func (p *Policy) roleOf(name string) Role {
	if r, ok := p.roles[name]; ok {
		return r
	}
	return RoleOptional
}

// 策略评估产物
type Assessment struct {
	// 在线来源全部零贡献、仅剩兜底来源成果
	FallbackOnly bool
}

// Assess：按原始贡献计数评估本次聚合
// 约束：仅产出标记与日志，不改变结果集；检索失败与否从不由提供方状况决定
func (p *Policy) Assess(active []providers.Provider, res aggregate.Result) Assessment {
	liveRecords := 0
	fallbackRecords := 0
	for _, pr := range active {
		n := res.Raw[pr.Source()]
		if p.roleOf(pr.Name()) == RoleFallback {
			fallbackRecords += n
		} else {
			liveRecords += n
		}
	}
	a := Assessment{FallbackOnly: liveRecords == 0 && fallbackRecords > 0}
	if a.FallbackOnly {
		logger.L().Info("search_fallback_static_only",
			"fallback_records", fallbackRecords,
			"provider_errors", len(res.Errors),
		)
	}
	return a
}
