package location

import (
	"math"
	"os"
	"strconv"

	"court-api/internal/geo"
)

// 质心表项：城市级反地理的最小单元
type Centroid struct {
	Point   geo.Point
	City    string
	Region  string
	Country string
}

// 文档注释：KD-Tree 最近邻（二维经纬）
// 背景：反地理只需城市级精度，用内置质心表的最近邻即可；限制最大半径避免海上或
// 偏远坐标被误归属到远处城市。
// 约束：简化二叉树构建，按经度/纬度交替分割；仅支持最近一个点查询。
type kdNode struct {
	c  Centroid
	ax int // 0:lng,1:lat
	l  *kdNode
	r  *kdNode
}

func buildKD(cs []Centroid, depth int) *kdNode {
	if len(cs) == 0 {
		return nil
	}
	ax := depth % 2
	// 中位数分割，避免整表排序
	mid := len(cs) / 2
	selectNth(cs, mid, ax)
	node := &kdNode{c: cs[mid], ax: ax}
	node.l = buildKD(cs[:mid], depth+1)
	node.r = buildKD(cs[mid+1:], depth+1)
	return node
}

// 原地 nth 元素选择（轴为经度/纬度）
func selectNth(a []Centroid, n int, ax int) {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := partition(a, lo, hi, (lo+hi)/2, ax)
		if p == n {
			return
		}
		if n < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

func partition(a []Centroid, lo, hi, pivot, ax int) int {
	pv := a[pivot]
	a[pivot], a[hi] = a[hi], a[pivot]
	i := lo
	for j := lo; j < hi; j++ {
		if lessCent(a[j], pv, ax) {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}

func lessCent(x, y Centroid, ax int) bool {
	if ax == 0 {
		return x.Point.Lng < y.Point.Lng
	}
	return x.Point.Lat < y.Point.Lat
}

// 最近邻查询，返回质心与距离（千米）
func nearest(node *kdNode, pt geo.Point) (Centroid, float64) {
	best := Centroid{}
	bestD := math.MaxFloat64
	var dfs func(n *kdNode)
	dfs = func(n *kdNode) {
		if n == nil {
			return
		}
		d := geo.DistanceKm(pt, n.c.Point)
		if d < bestD {
			bestD = d
			best = n.c
		}
		var key, q float64
		if n.ax == 0 {
			key = pt.Lng
			q = n.c.Point.Lng
		} else {
			key = pt.Lat
			q = n.c.Point.Lat
		}
		first, second := n.l, n.r
		if key > q {
			first, second = n.r, n.l
		}
		dfs(first)
		// 仅当分割平面到查询点的距离小于当前最优距离时才遍历另一侧
		if math.Abs(key-q) < bestD/111.0 {
			dfs(second)
		}
	}
	dfs(node)
	return best, bestD
}

// 文档注释：反地理编码器（城市级，尽力而为）
// 背景：为解析出的坐标补全城市/行政区/国家文本；命中失败只影响展示字段，
// 坐标本身足以支撑检索，故任何失败都被上层吞掉。
type ReverseGeocoder struct {
	kd          *kdNode
	maxRadiusKm float64
}

// NewReverseGeocoder：cs 为 nil 时使用内置质心表
func NewReverseGeocoder(cs []Centroid) *ReverseGeocoder {
	if cs == nil {
		cs = cityCentroids
	}
	r := 50.0
	if s := os.Getenv("REVERSE_GEO_RADIUS_KM"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
			r = f
		}
	}
	var kd *kdNode
	if len(cs) > 0 {
		kd = buildKD(append([]Centroid{}, cs...), 0)
	}
	return &ReverseGeocoder{kd: kd, maxRadiusKm: r}
}

// Nearest：半径内最近质心；超出半径视为未命中
func (g *ReverseGeocoder) Nearest(pt geo.Point) (Centroid, bool) {
	if g == nil || g.kd == nil {
		return Centroid{}, false
	}
	c, d := nearest(g.kd, pt)
	if d > g.maxRadiusKm {
		return Centroid{}, false
	}
	return c, true
}
