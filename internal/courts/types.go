// 包 courts：跨提供方统一的场地记录与检索请求/结果模型
// 背景：各外部数据源字段松散且可空性不一致，统一收敛为一套规范结构后再进入聚合/去重/排序链路。
package courts

import (
	"strings"

	"court-api/internal/geo"
)

// 运动类型（规范枚举）
type Sport string

const (
	SportAny        Sport = ""
	SportTennis     Sport = "tennis"
	SportBasketball Sport = "basketball"
	SportPickleball Sport = "pickleball"
	SportVolleyball Sport = "volleyball"
	SportMulti      Sport = "multi-sport"
)

// AllSports：固定顺序的枚举表
// 约束：分类器按此顺序匹配关键词，禁止依赖 map 迭代顺序，保证同输入同输出
var AllSports = []Sport{SportTennis, SportBasketball, SportPickleball, SportVolleyball}

// ParseSport：解析外部传入的运动类型参数；未知值回退为不过滤
func ParseSport(s string) Sport {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tennis":
		return SportTennis
	case "basketball":
		return SportBasketball
	case "pickleball":
		return SportPickleball
	case "volleyball":
		return SportVolleyball
	case "multi-sport", "multi":
		return SportMulti
	}
	return SportAny
}

// 数据来源标识
type Source string

const (
	SourceStatic       Source = "static"
	SourceGooglePlaces Source = "google_places"
	SourceFoursquare   Source = "foursquare"
)

// 文档注释：三态字段取值状态
// 背景：不用零值或随手默认值兜底可空字段；室内/场面/价格等字段显式区分
// “已知 / 未知 / 不适用”，下游只依据状态分支，不再猜测零值含义。
type Presence uint8

const (
	Unknown Presence = iota
	Known
	NotApplicable
)

func (p Presence) String() string {
	switch p {
	case Known:
		return "known"
	case NotApplicable:
		return "not_applicable"
	}
	return "unknown"
}

// 场面材质三态（grass/clay/hard/concrete 等；如对室内泳池类场地为不适用）
type Surface struct {
	State Presence `json:"state"`
	Value string   `json:"value,omitempty"`
}

func KnownSurface(v string) Surface { return Surface{State: Known, Value: v} }

// 室内三态
type Indoor struct {
	State Presence `json:"state"`
	Value bool     `json:"value,omitempty"`
}

func KnownIndoor(v bool) Indoor { return Indoor{State: Known, Value: v} }

// 坐标三态：显式标记未知，避免 (0,0) 被误当作真实位置
type Position struct {
	Known bool      `json:"known"`
	Point geo.Point `json:"point,omitempty"`
}

func KnownPosition(lat, lng float64) Position {
	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return Position{}
	}
	return Position{Known: true, Point: p}
}

// 文档注释：规范化场地记录
// 背景：每次检索按各提供方原始响应即时构造，不做持久化；id 仅在单一提供方范围内稳定。
// 约束：DistanceKm 相对当前检索起点临时计算，由编排层填充；切勿跨请求复用。
type CourtRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Sport       Sport    `json:"sport"`
	Address     string   `json:"address,omitempty"`
	Position    Position `json:"position"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"rating_count"`
	// 价格估算（美元/小时）；未知以三态标记，不用 0 兜底
	PriceKnown       bool     `json:"price_known"`
	PricePerHour     float64  `json:"price_per_hour,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	Surface          Surface  `json:"surface"`
	Indoor           Indoor   `json:"indoor"`
	Available        bool     `json:"available"`
	ImageURL         string   `json:"image_url,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Website          string   `json:"website,omitempty"`
	Description      string   `json:"description,omitempty"`
	SourceProvider   Source   `json:"source_provider"`
	SourceTags       []string `json:"source_tags,omitempty"`
	DistanceKnown    bool     `json:"distance_known"`
	DistanceKm       float64  `json:"distance_km,omitempty"`
	// 坐标已知时由编排层填充，供客户端做地图分块聚合
	Geohash          string   `json:"geohash,omitempty"`
}

// 排序键
type SortKey string

const (
	SortDistance SortKey = "distance"
	SortRating   SortKey = "rating"
	SortPrice    SortKey = "price"
)

// ParseSortKey：未知值回退为距离排序
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rating":
		return SortRating
	case "price":
		return SortPrice
	}
	return SortDistance
}

const (
	DefaultMaxResults = 50
	DefaultRadiusKm   = 10.0
)

// 检索请求
// 约束：Origin 未知时由编排层先行解析调用方位置；ActiveProviders 为空表示全部已注册提供方参与
type SearchQuery struct {
	Origin          Position `json:"origin"`
	RadiusKm        float64  `json:"radius_km"`
	Sport           Sport    `json:"sport,omitempty"`
	MaxResults      int      `json:"max_results"`
	SortKey         SortKey  `json:"sort_key"`
	ActiveProviders []string `json:"active_providers,omitempty"`
}

// Normalize：补全缺省值；不修改调用方切片
func (q SearchQuery) Normalize() SearchQuery {
	if q.RadiusKm <= 0 {
		q.RadiusKm = DefaultRadiusKm
	}
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxResults
	}
	if q.SortKey == "" {
		q.SortKey = SortDistance
	}
	return q
}

// 检索结果
// 背景：空记录列表是合法的“无匹配”答案，与被 LocationError 拒绝的调用严格区分
type SearchResult struct {
	Records       []CourtRecord   `json:"records"`
	Contributions map[Source]int  `json:"contributions"`
	Errors        []ProviderError `json:"provider_errors,omitempty"`
	ElapsedMs     int64           `json:"elapsed_ms"`
}
