package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"court-api/internal/classify"
	"court-api/internal/courts"
	"court-api/internal/geo"
	"court-api/internal/logger"
	"court-api/internal/metrics"
)

// 文档注释：Google Places 风格附近检索响应结构
// 背景：对齐 nearby-search 的返回字段，仅解析本引擎需要的部分；status 用于配额/拒绝类错误判定。
// 约束：可空字段用指针承载，归一化阶段统一判空，下游不再接触原始结构。
type googleResponse struct {
	Results []googlePlace `json:"results"`
	Status  string        `json:"status"`
}

type googlePlace struct {
	PlaceID      string          `json:"place_id"`
	Name         string          `json:"name"`
	Vicinity     *string         `json:"vicinity,omitempty"`
	Geometry     *googleGeometry `json:"geometry,omitempty"`
	Rating       *float64        `json:"rating,omitempty"`
	UserRatings  *int            `json:"user_ratings_total,omitempty"`
	Types        []string        `json:"types"`
	Photos       []googlePhoto   `json:"photos,omitempty"`
	PriceLevel   *int            `json:"price_level,omitempty"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours,omitempty"`
}

type googleGeometry struct {
	Location geo.Point `json:"location"`
}

type googlePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// 价格档位映射表：provider price_level 0–4 → 美元/小时估算；缺失或越界取默认档
var priceLevelTable = [5]float64{15, 25, 45, 65, 85}

const defaultPriceEstimate = 25

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func priceFromLevel(level *int) float64 {
	if level == nil || *level < 0 || *level >= len(priceLevelTable) {
		return defaultPriceEstimate
	}
	return priceLevelTable[*level]
}

// 文档注释：运动 → 检索类目映射
// 背景：底层 API 单次调用只接受一个类目，适配器按运动取类目集逐个调用后合并；
// type+keyword 组合贴合 Places 的检索语义。
type googleCategory struct {
	Type    string
	Keyword string
}

var googleCategories = map[courts.Sport][]googleCategory{
	courts.SportTennis:     {{"park", "tennis court"}, {"gym", "tennis"}},
	courts.SportBasketball: {{"park", "basketball court"}, {"gym", "basketball"}},
	courts.SportPickleball: {{"park", "pickleball court"}, {"gym", "pickleball"}},
	courts.SportVolleyball: {{"park", "volleyball court"}, {"gym", "volleyball"}},
}

// 无运动过滤时的通用类目集
var googleCategoriesAny = []googleCategory{
	{"park", "sports court"},
	{"gym", "court"},
	{"stadium", "courts"},
}

// 文档注释：Google Places 风格适配器
// 背景：在线实时来源；每次 SearchNearby 自带超时，按类目逐次调用、按 place_id 合并去重，
// 故障分类后随结果带回，绝不向上抛出。
type GoogleAdapter struct {
	key     string
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewGoogleAdapter：base 为空时使用官方 nearby-search 端点；client 为 nil 时使用默认客户端
func NewGoogleAdapter(key, base string, client *http.Client) *GoogleAdapter {
	if base == "" {
		base = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	}
	if client == nil {
		client = &http.Client{}
	}
	return &GoogleAdapter{key: key, baseURL: base, client: client, timeout: readTimeout()}
}

func (a *GoogleAdapter) Name() string          { return "google_places" }
func (a *GoogleAdapter) Source() courts.Source { return courts.SourceGooglePlaces }

// SearchNearby：按类目扇出调用并合并
// 约束：部分类目失败不否决其余类目的成果——已取到的记录照常返回，错误仅记录首个；
// 全部失败时返回空记录集加一条分类错误。
func (a *GoogleAdapter) SearchNearby(ctx context.Context, origin geo.Point, radiusKm float64, sport courts.Sport) ([]courts.CourtRecord, *courts.ProviderError) {
	t0 := time.Now()
	metrics.ProviderRequestsTotal.WithLabelValues(a.Name()).Inc()
	if a.key == "" {
		metrics.ProviderFailTotal.WithLabelValues(a.Name()).Inc()
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderNotConfigured, Message: "missing api key"}
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cats := googleCategoriesAny
	if sport != courts.SportAny {
		if c, ok := googleCategories[sport]; ok {
			cats = c
		}
	}
	seen := make(map[string]bool)
	var out []courts.CourtRecord
	var firstErr *courts.ProviderError
	for _, cat := range cats {
		recs, perr := a.queryCategory(ctx, origin, radiusKm, cat)
		if perr != nil {
			logger.L().Warn("google_category_fail", "type", cat.Type, "keyword", cat.Keyword, "kind", string(perr.Kind), "msg", perr.Message)
			if firstErr == nil {
				firstErr = perr
			}
			continue
		}
		for _, r := range recs {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			out = append(out, r)
		}
	}
	if len(out) > 0 {
		metrics.ProviderSuccessTotal.WithLabelValues(a.Name()).Inc()
		// 有成果即不再上报错误，降级为日志
		firstErr = nil
	} else if firstErr != nil {
		metrics.ProviderFailTotal.WithLabelValues(a.Name()).Inc()
	}
	metrics.ProviderRecordsTotal.WithLabelValues(a.Name()).Add(float64(len(out)))
	metrics.ProviderDurationMs.WithLabelValues(a.Name()).Observe(float64(time.Since(t0).Milliseconds()))
	logger.L().Debug("google_search_done", "sport", string(sport), "records", len(out), "duration_ms", time.Since(t0).Milliseconds())
	return out, firstErr
}

// queryCategory：单类目一次 HTTP 调用
func (a *GoogleAdapter) queryCategory(ctx context.Context, origin geo.Point, radiusKm float64, cat googleCategory) ([]courts.CourtRecord, *courts.ProviderError) {
	q := url.Values{}
	q.Set("key", a.key)
	q.Set("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Set("radius", strconv.Itoa(int(radiusKm*1000)))
	q.Set("type", cat.Type)
	q.Set("keyword", cat.Keyword)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderNetworkError, Message: err.Error()}
	}
	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderTimeout, Message: err.Error()}
		}
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderNetworkError, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		kind := courts.ProviderNetworkError
		if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
			kind = courts.ProviderQuotaExceeded
		}
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: kind, Message: "http status " + resp.Status}
	}
	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderParseError, Message: err.Error()}
	}
	switch body.Status {
	case "OK", "ZERO_RESULTS", "":
	case "OVER_QUERY_LIMIT", "REQUEST_DENIED":
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderQuotaExceeded, Message: "status " + body.Status}
	default:
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderNetworkError, Message: "status " + body.Status}
	}
	out := make([]courts.CourtRecord, 0, len(body.Results))
	for _, item := range body.Results {
		rec, ok := a.normalize(item)
		if !ok {
			// 单条畸形项按条跳过，不否决整批
			metrics.ProviderItemSkipTotal.WithLabelValues(a.Name()).Inc()
			logger.L().Debug("google_item_skipped", "place_id", item.PlaceID, "name", item.Name)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// normalize：单条响应项 → 规范记录；字段不完整或坐标越界视为畸形
func (a *GoogleAdapter) normalize(item googlePlace) (courts.CourtRecord, bool) {
	if item.PlaceID == "" || strings.TrimSpace(item.Name) == "" {
		return courts.CourtRecord{}, false
	}
	pos := courts.Position{}
	if item.Geometry != nil {
		pos = courts.KnownPosition(item.Geometry.Location.Lat, item.Geometry.Location.Lng)
		if !pos.Known {
			return courts.CourtRecord{}, false
		}
	}
	rec := courts.CourtRecord{
		ID:             "google-" + item.PlaceID,
		Name:           item.Name,
		Sport:          classify.Sport(item.Name, item.Types),
		Position:       pos,
		Available:      true,
		PriceKnown:     true,
		PricePerHour:   priceFromLevel(item.PriceLevel),
		SourceProvider: courts.SourceGooglePlaces,
		SourceTags:     item.Types,
	}
	if item.Vicinity != nil {
		rec.Address = *item.Vicinity
	}
	if item.Rating != nil {
		// 评分越界的脏数据收敛到模型约定的 0–5 区间
		rec.Rating = clampRating(*item.Rating)
	}
	if item.UserRatings != nil {
		rec.RatingCount = *item.UserRatings
	}
	if item.OpeningHours != nil {
		rec.Available = item.OpeningHours.OpenNow
	}
	if len(item.Photos) > 0 && item.Photos[0].PhotoReference != "" {
		rec.ImageURL = "https://maps.googleapis.com/maps/api/place/photo?maxwidth=640&photo_reference=" + url.QueryEscape(item.Photos[0].PhotoReference)
	} else {
		// 无图片时合成占位图，前端无需判空
		rec.ImageURL = "https://placehold.co/640x360?text=" + url.QueryEscape(item.Name)
	}
	// 在线来源不提供场面/室内信息
	rec.Surface = courts.Surface{State: courts.Unknown}
	rec.Indoor = courts.Indoor{State: courts.Unknown}
	return rec, true
}
