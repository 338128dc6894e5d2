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

// Foursquare 风格 place-search 响应结构
type fsqResponse struct {
	Results []fsqPlace `json:"results"`
}

type fsqPlace struct {
	FsqID    string `json:"fsq_id"`
	Name     string `json:"name"`
	Location *struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location,omitempty"`
	Geocodes *struct {
		Main geo.Point `json:"main"`
	} `json:"geocodes,omitempty"`
	Categories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Rating  *float64 `json:"rating,omitempty"`
	Price   *int     `json:"price,omitempty"`
	Tel     string   `json:"tel,omitempty"`
	Website string   `json:"website,omitempty"`
}

// 文档注释：运动 → Foursquare 类目映射（与 Google 风格不同的类目体系）
// 背景：Foursquare 用数值类目 id；一次调用同样只带一个类目，按运动逐类目扇出后合并。
var fsqCategories = map[courts.Sport][]string{
	courts.SportTennis:     {"18067"},
	courts.SportBasketball: {"18008"},
	courts.SportPickleball: {"18095"},
	courts.SportVolleyball: {"18075"},
}

var fsqCategoriesAny = []string{"18067", "18008", "18095", "18075"}

// 文档注释：Foursquare 风格适配器
// 背景：第二个在线来源，用于交叉补全与对照去重；凭据缺失时自动停用——立即返回空且不记错误，
// 不影响其余提供方。
type FoursquareAdapter struct {
	key     string
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewFoursquareAdapter：base 为空时使用官方 v3 place-search 端点
func NewFoursquareAdapter(key, base string, client *http.Client) *FoursquareAdapter {
	if base == "" {
		base = "https://api.foursquare.com/v3/places/search"
	}
	if client == nil {
		client = &http.Client{}
	}
	return &FoursquareAdapter{key: key, baseURL: base, client: client, timeout: readTimeout()}
}

func (a *FoursquareAdapter) Name() string          { return "foursquare" }
func (a *FoursquareAdapter) Source() courts.Source { return courts.SourceFoursquare }

// Enabled：凭据在位才参与检索
func (a *FoursquareAdapter) Enabled() bool { return a.key != "" }

func (a *FoursquareAdapter) SearchNearby(ctx context.Context, origin geo.Point, radiusKm float64, sport courts.Sport) ([]courts.CourtRecord, *courts.ProviderError) {
	if !a.Enabled() {
		logger.L().Debug("foursquare_disabled", "reason", "missing_credential")
		return nil, nil
	}
	t0 := time.Now()
	metrics.ProviderRequestsTotal.WithLabelValues(a.Name()).Inc()
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cats := fsqCategoriesAny
	if sport != courts.SportAny {
		if c, ok := fsqCategories[sport]; ok {
			cats = c
		}
	}
	seen := make(map[string]bool)
	var out []courts.CourtRecord
	var firstErr *courts.ProviderError
	for _, cat := range cats {
		recs, perr := a.queryCategory(ctx, origin, radiusKm, cat)
		if perr != nil {
			logger.L().Warn("foursquare_category_fail", "category", cat, "kind", string(perr.Kind), "msg", perr.Message)
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
		firstErr = nil
	} else if firstErr != nil {
		metrics.ProviderFailTotal.WithLabelValues(a.Name()).Inc()
	}
	metrics.ProviderRecordsTotal.WithLabelValues(a.Name()).Add(float64(len(out)))
	metrics.ProviderDurationMs.WithLabelValues(a.Name()).Observe(float64(time.Since(t0).Milliseconds()))
	logger.L().Debug("foursquare_search_done", "sport", string(sport), "records", len(out))
	return out, firstErr
}

func (a *FoursquareAdapter) queryCategory(ctx context.Context, origin geo.Point, radiusKm float64, category string) ([]courts.CourtRecord, *courts.ProviderError) {
	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Set("radius", strconv.Itoa(int(radiusKm*1000)))
	q.Set("categories", category)
	q.Set("limit", "50")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderNetworkError, Message: err.Error()}
	}
	req.Header.Set("Authorization", a.key)
	req.Header.Set("accept", "application/json")
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
		if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusUnauthorized {
			kind = courts.ProviderQuotaExceeded
		}
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: kind, Message: "http status " + resp.Status}
	}
	var body fsqResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &courts.ProviderError{Provider: a.Name(), Kind: courts.ProviderParseError, Message: err.Error()}
	}
	out := make([]courts.CourtRecord, 0, len(body.Results))
	for _, item := range body.Results {
		rec, ok := a.normalize(item)
		if !ok {
			metrics.ProviderItemSkipTotal.WithLabelValues(a.Name()).Inc()
			logger.L().Debug("foursquare_item_skipped", "fsq_id", item.FsqID, "name", item.Name)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// normalize：Foursquare 项 → 规范记录
// 约束：评分 0–10 制换算为 0–5 制；price 档位 1–4 借用统一档位表（减一对齐下标）
func (a *FoursquareAdapter) normalize(item fsqPlace) (courts.CourtRecord, bool) {
	if item.FsqID == "" || strings.TrimSpace(item.Name) == "" {
		return courts.CourtRecord{}, false
	}
	var hints []string
	for _, c := range item.Categories {
		hints = append(hints, c.Name)
	}
	pos := courts.Position{}
	if item.Geocodes != nil {
		pos = courts.KnownPosition(item.Geocodes.Main.Lat, item.Geocodes.Main.Lng)
		if !pos.Known {
			return courts.CourtRecord{}, false
		}
	}
	rec := courts.CourtRecord{
		ID:             "fsq-" + item.FsqID,
		Name:           item.Name,
		Sport:          classify.Sport(item.Name, hints),
		Position:       pos,
		Available:      true,
		Phone:          item.Tel,
		Website:        item.Website,
		SourceProvider: courts.SourceFoursquare,
		SourceTags:     hints,
		Surface:        courts.Surface{State: courts.Unknown},
		Indoor:         courts.Indoor{State: courts.Unknown},
		ImageURL:       "https://placehold.co/640x360?text=" + url.QueryEscape(item.Name),
	}
	if item.Location != nil {
		rec.Address = item.Location.FormattedAddress
	}
	if item.Rating != nil {
		rec.Rating = *item.Rating / 2
	}
	if item.Price != nil && *item.Price >= 1 && *item.Price <= 4 {
		rec.PriceKnown = true
		rec.PricePerHour = priceLevelTable[*item.Price-1]
	}
	return rec, true
}
