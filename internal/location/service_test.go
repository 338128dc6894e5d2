package location

import (
	"context"
	"testing"
	"time"

	"court-api/internal/courts"
	"court-api/internal/geo"
)

type fakeResolver struct {
	calls int
	loc   UserLocation
	err   *courts.LocationError
}

func (f *fakeResolver) Resolve(ctx context.Context, clientIP string) (UserLocation, *courts.LocationError) {
	f.calls++
	if f.err != nil {
		return UserLocation{}, f.err
	}
	loc := f.loc
	loc.ResolvedAt = time.Now()
	return loc, nil
}

func newTestService(r Resolver, ttl time.Duration, rg *ReverseGeocoder) *Service {
	return &Service{resolver: r, mem: newMemCache(ttl, 0), revgeo: rg}
}

func TestLocateCacheHitSkipsResolver(t *testing.T) {
	fr := &fakeResolver{loc: UserLocation{Point: geo.Point{Lat: 35.78, Lng: -78.64}}}
	svc := newTestService(fr, time.Minute, nil)

	first, lerr := svc.Locate(context.Background(), "203.0.113.7", true)
	if lerr != nil {
		t.Fatalf("unexpected error: %+v", lerr)
	}
	second, lerr := svc.Locate(context.Background(), "203.0.113.7", true)
	if lerr != nil {
		t.Fatalf("unexpected error: %+v", lerr)
	}
	if fr.calls != 1 {
		t.Fatalf("resolver called %d times, want 1 (second hit from cache)", fr.calls)
	}
	if first.Point != second.Point {
		t.Error("cached location diverged from resolved one")
	}
}

func TestLocateExpiredEntryResolvesFresh(t *testing.T) {
	fr := &fakeResolver{loc: UserLocation{Point: geo.Point{Lat: 35.78, Lng: -78.64}}}
	svc := newTestService(fr, 10*time.Millisecond, nil)

	svc.Locate(context.Background(), "203.0.113.8", true)
	time.Sleep(20 * time.Millisecond)
	svc.Locate(context.Background(), "203.0.113.8", true)
	if fr.calls != 2 {
		t.Fatalf("resolver called %d times, want 2 after expiry", fr.calls)
	}
}

func TestLocateBypassCache(t *testing.T) {
	fr := &fakeResolver{loc: UserLocation{Point: geo.Point{Lat: 35.78, Lng: -78.64}}}
	svc := newTestService(fr, time.Minute, nil)

	svc.Locate(context.Background(), "203.0.113.9", true)
	svc.Locate(context.Background(), "203.0.113.9", false)
	if fr.calls != 2 {
		t.Fatalf("resolver called %d times, want 2 when cache bypassed", fr.calls)
	}
}

func TestLocateInvalidate(t *testing.T) {
	fr := &fakeResolver{loc: UserLocation{Point: geo.Point{Lat: 35.78, Lng: -78.64}}}
	svc := newTestService(fr, time.Minute, nil)

	svc.Locate(context.Background(), "203.0.113.10", true)
	svc.Invalidate("203.0.113.10")
	svc.Locate(context.Background(), "203.0.113.10", true)
	if fr.calls != 2 {
		t.Fatalf("resolver called %d times, want 2 after invalidation", fr.calls)
	}
}

func TestLocateMissingIP(t *testing.T) {
	svc := newTestService(&fakeResolver{}, time.Minute, nil)
	_, lerr := svc.Locate(context.Background(), "", true)
	if lerr == nil || lerr.Kind != courts.LocationPositionUnavailable {
		t.Fatalf("want position_unavailable, got %+v", lerr)
	}
}

func TestLocateNoResolverUnsupported(t *testing.T) {
	svc := newTestService(nil, time.Minute, nil)
	_, lerr := svc.Locate(context.Background(), "203.0.113.11", true)
	if lerr == nil || lerr.Kind != courts.LocationUnsupported {
		t.Fatalf("want unsupported, got %+v", lerr)
	}
}

func TestLocateResolverErrorPropagates(t *testing.T) {
	fr := &fakeResolver{err: &courts.LocationError{Kind: courts.LocationPermissionDenied, Message: "anonymous proxy"}}
	svc := newTestService(fr, time.Minute, nil)
	_, lerr := svc.Locate(context.Background(), "203.0.113.12", true)
	if lerr == nil || lerr.Kind != courts.LocationPermissionDenied {
		t.Fatalf("want permission_denied, got %+v", lerr)
	}
	// 失败不得写缓存：下一次仍应走解析器
	svc.Locate(context.Background(), "203.0.113.12", true)
	if fr.calls != 2 {
		t.Fatalf("resolver called %d times, want 2 (failures are not cached)", fr.calls)
	}
}

func TestEnrichFillsCityButNeverFails(t *testing.T) {
	rg := NewReverseGeocoder([]Centroid{
		{Point: geo.Point{Lat: 35.7796, Lng: -78.6382}, City: "Raleigh", Region: "North Carolina", Country: "United States"},
	})
	fr := &fakeResolver{loc: UserLocation{Point: geo.Point{Lat: 35.80, Lng: -78.65}}}
	svc := newTestService(fr, time.Minute, rg)

	loc, lerr := svc.Locate(context.Background(), "203.0.113.13", true)
	if lerr != nil {
		t.Fatalf("unexpected error: %+v", lerr)
	}
	if loc.City != "Raleigh" {
		t.Errorf("city = %q, want Raleigh from reverse geocode", loc.City)
	}

	// 质心全部超出半径：补全落空但解析整体仍成功
	farFR := &fakeResolver{loc: UserLocation{Point: geo.Point{Lat: -45.0, Lng: 170.0}}}
	svc2 := newTestService(farFR, time.Minute, rg)
	loc2, lerr2 := svc2.Locate(context.Background(), "203.0.113.14", true)
	if lerr2 != nil {
		t.Fatalf("reverse-geo miss must not fail the resolve: %+v", lerr2)
	}
	if loc2.City != "" {
		t.Errorf("city should stay empty on miss, got %q", loc2.City)
	}
}
