// 包 geo：经纬度点与球面距离的最小工具集，检索引擎全链路统一使用
package geo

import "math"

// 点坐标（WGS84）
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid：坐标范围校验
// 约束：lat∈[-90,90]、lng∈[-180,180]；越界坐标一律按未知处理，不做截断修正
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// DistanceKm：球面距离（Haversine），返回千米
// 背景：引擎标准距离度量，用于半径过滤、去重邻近判定与距离排序；对称且 distance(a,a)==0
func DistanceKm(a, b Point) float64 {
	const R = 6371.0
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return R * c
}
