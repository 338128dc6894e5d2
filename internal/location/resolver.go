// 包 location：调用方位置解析与短时缓存
// 背景：检索请求未携带起点坐标时，由本包按调用方 IP 做地理定位，并做尽力而为的反地理补全；
// 位置是检索的前置条件，解析失败是整个引擎中唯一允许终止调用的错误路径。
package location

import (
	"context"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"

	"court-api/internal/courts"
	"court-api/internal/geo"
)

// 解析得到的调用方位置；Address/City 等由反地理尽力补全，可能为空
type UserLocation struct {
	Point      geo.Point `json:"point"`
	City       string    `json:"city,omitempty"`
	Region     string    `json:"region,omitempty"`
	Country    string    `json:"country,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// 文档注释：位置解析器契约
// 约束：失败以分类后的 *LocationError 返回；实现不得 panic
type Resolver interface {
	Resolve(ctx context.Context, clientIP string) (UserLocation, *courts.LocationError)
}

// 文档注释：GeoIP2 解析器
// 背景：对本机 mmdb 城市库做 IP → 坐标定位，无外部网络调用；库文件缺失时整个解析器停用，
// 上层把未携带坐标的请求归为 Unsupported。
type GeoIPResolver struct {
	reader *geoip2.Reader
}

func NewGeoIPResolver(dbPath string) (*GeoIPResolver, error) {
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &GeoIPResolver{reader: r}, nil
}

func (r *GeoIPResolver) Close() error { return r.reader.Close() }

// Resolve：IP → 坐标与行政区
// 错误映射：IP 不可解析/库无记录/零坐标 → PositionUnavailable；匿名代理 → PermissionDenied；
// 上下文超时 → Timeout
func (r *GeoIPResolver) Resolve(ctx context.Context, clientIP string) (UserLocation, *courts.LocationError) {
	var out UserLocation
	if err := ctx.Err(); err != nil {
		return out, &courts.LocationError{Kind: courts.LocationTimeout, Message: err.Error()}
	}
	ip := net.ParseIP(clientIP)
	if ip == nil {
		return out, &courts.LocationError{Kind: courts.LocationPositionUnavailable, Message: "unparseable client ip"}
	}
	rec, err := r.reader.City(ip)
	if err != nil {
		return out, &courts.LocationError{Kind: courts.LocationPositionUnavailable, Message: err.Error()}
	}
	if rec.Traits.IsAnonymousProxy {
		return out, &courts.LocationError{Kind: courts.LocationPermissionDenied, Message: "anonymous proxy"}
	}
	if rec.Location.Latitude == 0 && rec.Location.Longitude == 0 {
		return out, &courts.LocationError{Kind: courts.LocationPositionUnavailable, Message: "no position for ip"}
	}
	out.Point = geo.Point{Lat: rec.Location.Latitude, Lng: rec.Location.Longitude}
	out.City = rec.City.Names["en"]
	out.Country = rec.Country.Names["en"]
	if len(rec.Subdivisions) > 0 {
		out.Region = rec.Subdivisions[0].Names["en"]
	}
	out.ResolvedAt = time.Now()
	return out, nil
}
