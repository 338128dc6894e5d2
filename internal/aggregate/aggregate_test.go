package aggregate

import (
	"context"
	"testing"
	"time"

	"court-api/internal/courts"
	"court-api/internal/geo"
	"court-api/internal/providers"
)

type fakeProvider struct {
	name  string
	src   courts.Source
	recs  []courts.CourtRecord
	err   *courts.ProviderError
	delay time.Duration
}

func (f *fakeProvider) Name() string          { return f.name }
func (f *fakeProvider) Source() courts.Source { return f.src }
func (f *fakeProvider) SearchNearby(ctx context.Context, origin geo.Point, radiusKm float64, sport courts.Sport) ([]courts.CourtRecord, *courts.ProviderError) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
		}
	}
	return f.recs, f.err
}

var origin = geo.Point{Lat: 35.7796, Lng: -78.6382}

func mkRec(id string, src courts.Source) courts.CourtRecord {
	return courts.CourtRecord{ID: id, Name: id, SourceProvider: src}
}

func TestFanSettlesAllAndIsolatesFailure(t *testing.T) {
	static := &fakeProvider{name: "static", src: courts.SourceStatic,
		recs: []courts.CourtRecord{mkRec("s1", courts.SourceStatic), mkRec("s2", courts.SourceStatic)}}
	broken := &fakeProvider{name: "google_places", src: courts.SourceGooglePlaces,
		err: &courts.ProviderError{Provider: "google_places", Kind: courts.ProviderQuotaExceeded}}
	ok := &fakeProvider{name: "foursquare", src: courts.SourceFoursquare,
		recs: []courts.CourtRecord{mkRec("f1", courts.SourceFoursquare)}}

	res := Fan(context.Background(), []providers.Provider{static, broken, ok}, origin, 10, courts.SportAny)
	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want 3 from surviving providers", len(res.Records))
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != courts.ProviderQuotaExceeded {
		t.Fatalf("want exactly one quota error, got %+v", res.Errors)
	}
	if res.Raw[courts.SourceStatic] != 2 || res.Raw[courts.SourceFoursquare] != 1 || res.Raw[courts.SourceGooglePlaces] != 0 {
		t.Fatalf("raw counts wrong: %+v", res.Raw)
	}
}

func TestOrderFollowsRegistrationNotCompletion(t *testing.T) {
	// 静态最先注册但最后完成；拼接顺序仍须静态在前
	slowStatic := &fakeProvider{name: "static", src: courts.SourceStatic, delay: 80 * time.Millisecond,
		recs: []courts.CourtRecord{mkRec("s1", courts.SourceStatic)}}
	fastLive := &fakeProvider{name: "google_places", src: courts.SourceGooglePlaces,
		recs: []courts.CourtRecord{mkRec("g1", courts.SourceGooglePlaces)}}
	res := Fan(context.Background(), []providers.Provider{slowStatic, fastLive}, origin, 10, courts.SportAny)
	if len(res.Records) != 2 || res.Records[0].ID != "s1" || res.Records[1].ID != "g1" {
		t.Fatalf("registration order not preserved: %+v", res.Records)
	}
}

func TestLatencyBoundedBySlowestNotSum(t *testing.T) {
	mk := func(name string, src courts.Source) *fakeProvider {
		return &fakeProvider{name: name, src: src, delay: 100 * time.Millisecond,
			recs: []courts.CourtRecord{mkRec(name+"-1", src)}}
	}
	list := []providers.Provider{
		mk("static", courts.SourceStatic),
		mk("google_places", courts.SourceGooglePlaces),
		mk("foursquare", courts.SourceFoursquare),
	}
	t0 := time.Now()
	res := Fan(context.Background(), list, origin, 10, courts.SportAny)
	elapsed := time.Since(t0)
	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(res.Records))
	}
	// 串行执行将是 300ms 起；并发汇合应贴近单家的 100ms
	if elapsed > 250*time.Millisecond {
		t.Fatalf("fan took %v, want bounded by slowest adapter", elapsed)
	}
}

func TestEmptyProviderList(t *testing.T) {
	res := Fan(context.Background(), nil, origin, 10, courts.SportAny)
	if len(res.Records) != 0 || len(res.Errors) != 0 {
		t.Fatalf("empty provider list should yield empty result, got %+v", res)
	}
}
