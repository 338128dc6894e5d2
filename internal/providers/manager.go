package providers

import (
	"court-api/internal/logger"
)

// 文档注释：提供方注册管理器
// 背景：维护固定优先级的提供方列表（静态数据集必须最先注册），聚合层按注册顺序拼接结果，
// 去重因此确定性地保留高优先级来源的副本；注册发生在启动期，此后只读，无需加锁。
type Manager struct {
	list []Provider
}

func NewManager() *Manager { return &Manager{} }

// Register：按调用顺序登记提供方
func (m *Manager) Register(p Provider) {
	m.list = append(m.list, p)
	logger.L().Info("provider_registered", "name", p.Name(), "source", string(p.Source()))
}

// Active：按请求筛选参与本次检索的提供方
// 约束：requested 为空表示全部参与；未注册的请求名被忽略（记录 debug 便于排查配置）
func (m *Manager) Active(requested []string) []Provider {
	if len(requested) == 0 {
		out := make([]Provider, len(m.list))
		copy(out, m.list)
		return out
	}
	want := make(map[string]bool, len(requested))
	for _, n := range requested {
		want[n] = true
	}
	var out []Provider
	for _, p := range m.list {
		if want[p.Name()] {
			out = append(out, p)
			delete(want, p.Name())
		}
	}
	for n := range want {
		logger.L().Debug("provider_request_unknown", "name", n)
	}
	return out
}

// Names：已注册提供方名称（注册顺序），用于健康探测输出
func (m *Manager) Names() []string {
	out := make([]string, 0, len(m.list))
	for _, p := range m.list {
		out = append(out, p.Name())
	}
	return out
}
