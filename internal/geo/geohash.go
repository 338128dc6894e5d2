package geo

// 文档注释：轻量 geohash 编码（base32）
// 背景：随结果给出量化坐标，供客户端做地图分块聚合；精度 7 字符约 150m。
// 约束：仅做编码，不做邻域枚举与解码。
var base32 = []rune("0123456789bcdefghjkmnpqrstuvwxyz")

func EncodeGeohash(lat, lng float64, precision int) string {
	latInt := []float64{-90, 90}
	lngInt := []float64{-180, 180}
	bits := []int{16, 8, 4, 2, 1}
	bit := 0
	ch := 0
	even := true
	out := make([]rune, 0, precision)
	for len(out) < precision {
		if even {
			mid := (lngInt[0] + lngInt[1]) / 2
			if lng >= mid {
				ch |= bits[bit]
				lngInt[0] = mid
			} else {
				lngInt[1] = mid
			}
		} else {
			mid := (latInt[0] + latInt[1]) / 2
			if lat >= mid {
				ch |= bits[bit]
				latInt[0] = mid
			} else {
				latInt[1] = mid
			}
		}
		even = !even
		if bit < 4 {
			bit++
		} else {
			out = append(out, base32[ch])
			bit = 0
			ch = 0
		}
	}
	return string(out)
}
