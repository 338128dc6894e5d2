package courts

import "fmt"

// 文档注释：提供方错误分类
// 背景：提供方层面的任何故障都在本地消化为“结果更少”，以分类条目随结果带回，绝不向上抛出；
// 单条响应项解析失败按条跳过，不升级为提供方错误。
type ProviderErrorKind string

const (
	ProviderTimeout       ProviderErrorKind = "timeout"
	ProviderNetworkError  ProviderErrorKind = "network_error"
	ProviderQuotaExceeded ProviderErrorKind = "quota_exceeded"
	ProviderParseError    ProviderErrorKind = "parse_error"
	ProviderNotConfigured ProviderErrorKind = "not_configured"
)

type ProviderError struct {
	Provider string            `json:"provider"`
	Kind     ProviderErrorKind `json:"kind"`
	Message  string            `json:"message,omitempty"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s (%s)", e.Provider, e.Kind, e.Message)
}

// 文档注释：位置错误分类（致命）
// 背景：唯一允许终止整个检索的错误类别——没有起点坐标就无从检索；其余一切都降级为部分结果。
type LocationErrorKind string

const (
	LocationPermissionDenied    LocationErrorKind = "permission_denied"
	LocationPositionUnavailable LocationErrorKind = "position_unavailable"
	LocationTimeout             LocationErrorKind = "timeout"
	LocationUnsupported         LocationErrorKind = "unsupported"
)

type LocationError struct {
	Kind    LocationErrorKind `json:"kind"`
	Message string            `json:"message,omitempty"`
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("location: %s (%s)", e.Kind, e.Message)
}
