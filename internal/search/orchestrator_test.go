package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-api/internal/aggregate"
	"court-api/internal/courts"
	"court-api/internal/geo"
	"court-api/internal/location"
	"court-api/internal/providers"
)

var raleigh = geo.Point{Lat: 35.7796, Lng: -78.6382}

type fixedResolver struct {
	loc location.UserLocation
	err *courts.LocationError
}

func (f fixedResolver) Resolve(ctx context.Context, ip string) (location.UserLocation, *courts.LocationError) {
	if f.err != nil {
		return location.UserLocation{}, f.err
	}
	loc := f.loc
	loc.ResolvedAt = time.Now()
	return loc, nil
}

func staticOnlyManager() *providers.Manager {
	mgr := providers.NewManager()
	mgr.Register(providers.NewStaticAdapter(nil))
	return mgr
}

func TestSearchStaticOnlySortedByDistance(t *testing.T) {
	orc := NewOrchestrator(nil, staticOnlyManager(), nil)
	q := courts.SearchQuery{
		Origin:   courts.KnownPosition(raleigh.Lat, raleigh.Lng),
		RadiusKm: 16,
		Sport:    courts.SportTennis,
	}
	res, lerr := orc.Search(context.Background(), q, "")
	if lerr != nil {
		t.Fatalf("unexpected failure: %+v", lerr)
	}
	if len(res.Records) == 0 {
		t.Fatal("expected tennis results near Raleigh")
	}
	for i := 1; i < len(res.Records); i++ {
		prev, cur := res.Records[i-1], res.Records[i]
		if !prev.DistanceKnown && cur.DistanceKnown {
			t.Errorf("distance-unknown record ranked before a known one at %d", i)
		}
		if prev.DistanceKnown && cur.DistanceKnown && prev.DistanceKm > cur.DistanceKm {
			t.Errorf("distance order violated at %d: %.2f > %.2f", i, prev.DistanceKm, cur.DistanceKm)
		}
	}
	if res.Contributions[courts.SourceStatic] != len(res.Records) {
		t.Errorf("contributions = %v, want all %d from static", res.Contributions, len(res.Records))
	}
}

func TestSearchSurvivesOnlineProviderQuotaFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	mgr := providers.NewManager()
	mgr.Register(providers.NewStaticAdapter(nil))
	mgr.Register(providers.NewGoogleAdapter("test-key", srv.URL, srv.Client()))

	orc := NewOrchestrator(nil, mgr, nil)
	q := courts.SearchQuery{
		Origin:   courts.KnownPosition(raleigh.Lat, raleigh.Lng),
		RadiusKm: 16,
		Sport:    courts.SportTennis,
	}
	res, lerr := orc.Search(context.Background(), q, "")
	if lerr != nil {
		t.Fatalf("online provider failure must not fail the search: %+v", lerr)
	}
	if len(res.Records) == 0 {
		t.Fatal("fallback records missing despite quota failure")
	}
	found := false
	for _, pe := range res.Errors {
		if pe.Provider == "google_places" && pe.Kind == courts.ProviderQuotaExceeded {
			found = true
		}
	}
	if !found {
		t.Errorf("quota error should surface in result errors, got %+v", res.Errors)
	}
	if res.Contributions[courts.SourceGooglePlaces] != 0 {
		t.Errorf("failed provider contributed records: %v", res.Contributions)
	}
}

func TestSearchEmptyMatchIsDoneNotError(t *testing.T) {
	data := []courts.CourtRecord{
		{ID: "v1", Name: "Sand Courts", Sport: courts.SportVolleyball, Position: courts.KnownPosition(35.78, -78.64), SourceProvider: courts.SourceStatic},
	}
	mgr := providers.NewManager()
	mgr.Register(providers.NewStaticAdapter(data))

	orc := NewOrchestrator(nil, mgr, nil)
	q := courts.SearchQuery{
		Origin:   courts.KnownPosition(raleigh.Lat, raleigh.Lng),
		RadiusKm: 10,
		Sport:    courts.SportPickleball,
	}
	res, lerr := orc.Search(context.Background(), q, "")
	if lerr != nil {
		t.Fatalf("zero matches is a valid outcome, got error %+v", lerr)
	}
	if len(res.Records) != 0 {
		t.Fatalf("got %d records, want none", len(res.Records))
	}
	if len(res.Errors) != 0 {
		t.Errorf("no provider errored, got %+v", res.Errors)
	}
}

func TestSearchFailsOnlyWhenOriginUnresolvable(t *testing.T) {
	mgr := staticOnlyManager()

	t.Run("no_location_service", func(t *testing.T) {
		orc := NewOrchestrator(nil, mgr, nil)
		_, lerr := orc.Search(context.Background(), courts.SearchQuery{Sport: courts.SportTennis}, "203.0.113.20")
		if lerr == nil || lerr.Kind != courts.LocationUnsupported {
			t.Fatalf("want unsupported, got %+v", lerr)
		}
	})

	t.Run("resolver_denied", func(t *testing.T) {
		svc := location.NewService(fixedResolver{err: &courts.LocationError{Kind: courts.LocationPermissionDenied, Message: "anonymous proxy"}}, nil, nil)
		orc := NewOrchestrator(svc, mgr, nil)
		_, lerr := orc.Search(context.Background(), courts.SearchQuery{Sport: courts.SportTennis}, "203.0.113.21")
		if lerr == nil || lerr.Kind != courts.LocationPermissionDenied {
			t.Fatalf("want permission_denied, got %+v", lerr)
		}
	})

	t.Run("resolved_origin_succeeds", func(t *testing.T) {
		svc := location.NewService(fixedResolver{loc: location.UserLocation{Point: raleigh}}, nil, nil)
		orc := NewOrchestrator(svc, mgr, nil)
		res, lerr := orc.Search(context.Background(), courts.SearchQuery{Sport: courts.SportTennis, RadiusKm: 16}, "203.0.113.22")
		if lerr != nil {
			t.Fatalf("unexpected failure: %+v", lerr)
		}
		if len(res.Records) == 0 {
			t.Fatal("expected records from resolved origin")
		}
	})
}

func TestSearchDistanceComputedAgainstOrigin(t *testing.T) {
	orc := NewOrchestrator(nil, staticOnlyManager(), nil)
	q := courts.SearchQuery{
		Origin:   courts.KnownPosition(raleigh.Lat, raleigh.Lng),
		RadiusKm: 16,
		Sport:    courts.SportTennis,
	}
	res, _ := orc.Search(context.Background(), q, "")
	for _, r := range res.Records {
		if r.Position.Known {
			want := geo.DistanceKm(raleigh, r.Position.Point)
			if !r.DistanceKnown {
				t.Errorf("%s: distance not computed despite known position", r.ID)
			} else if diff := r.DistanceKm - want; diff > 0.001 || diff < -0.001 {
				t.Errorf("%s: distance %.3f, want %.3f", r.ID, r.DistanceKm, want)
			}
		} else if r.DistanceKnown {
			t.Errorf("%s: distance claimed for unknown position", r.ID)
		}
	}
}

func TestSearchMaxResultsTruncationAfterContributions(t *testing.T) {
	var data []courts.CourtRecord
	for i := 0; i < 8; i++ {
		data = append(data, courts.CourtRecord{
			ID:             "t" + string(rune('a'+i)),
			Name:           "Court " + string(rune('A'+i)),
			Sport:          courts.SportTennis,
			Position:       courts.KnownPosition(35.78+float64(i)*0.001, -78.64),
			SourceProvider: courts.SourceStatic,
		})
	}
	mgr := providers.NewManager()
	mgr.Register(providers.NewStaticAdapter(data))
	orc := NewOrchestrator(nil, mgr, nil)

	q := courts.SearchQuery{
		Origin:     courts.KnownPosition(raleigh.Lat, raleigh.Lng),
		RadiusKm:   10,
		Sport:      courts.SportTennis,
		MaxResults: 3,
	}
	res, _ := orc.Search(context.Background(), q, "")
	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want truncation to 3", len(res.Records))
	}
	// 贡献计数按去重后的全量统计，不受截断影响
	if res.Contributions[courts.SourceStatic] != 8 {
		t.Errorf("contributions = %v, want 8 pre-truncation records", res.Contributions)
	}
}

func aggregateResult(staticN, googleN int) aggregate.Result {
	return aggregate.Result{Raw: map[courts.Source]int{
		courts.SourceStatic:       staticN,
		courts.SourceGooglePlaces: googleN,
	}}
}

func TestPolicyFallbackOnlyAssessment(t *testing.T) {
	p := DefaultPolicy()
	static := providers.NewStaticAdapter(nil)
	google := providers.NewGoogleAdapter("k", "", nil)

	a := p.Assess([]providers.Provider{static, google}, aggregateResult(5, 0))
	if !a.FallbackOnly {
		t.Error("zero online contribution should flag fallback-only")
	}
	a = p.Assess([]providers.Provider{static, google}, aggregateResult(5, 2))
	if a.FallbackOnly {
		t.Error("online contribution present, must not flag fallback-only")
	}
	a = p.Assess([]providers.Provider{static, google}, aggregateResult(0, 0))
	if a.FallbackOnly {
		t.Error("nothing at all is not a fallback-only outcome")
	}
}
