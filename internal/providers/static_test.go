package providers

import (
	"context"
	"testing"

	"court-api/internal/courts"
	"court-api/internal/geo"
)

var raleigh = geo.Point{Lat: 35.7796, Lng: -78.6382}

func TestStaticSportAndRadiusFilter(t *testing.T) {
	a := NewStaticAdapter(nil)
	recs, perr := a.SearchNearby(context.Background(), raleigh, 16, courts.SportTennis)
	if perr != nil {
		t.Fatalf("static adapter must never fail: %+v", perr)
	}
	if len(recs) == 0 {
		t.Fatal("expected tennis courts near Raleigh")
	}
	for _, r := range recs {
		if r.SourceProvider != courts.SourceStatic {
			t.Errorf("%s: unexpected source %s", r.ID, r.SourceProvider)
		}
		if r.Sport != courts.SportTennis && r.Sport != courts.SportMulti {
			t.Errorf("%s: sport %s leaked through tennis filter", r.ID, r.Sport)
		}
		if r.Position.Known && geo.DistanceKm(raleigh, r.Position.Point) > 16 {
			t.Errorf("%s: outside 16km radius", r.ID)
		}
	}
	// 德罕市中心的场地在 16km 之外，必须被半径过滤
	for _, r := range recs {
		if r.ID == "static-004" {
			t.Error("Durham court should be filtered by radius")
		}
	}
}

func TestStaticUnknownCoordinatesKept(t *testing.T) {
	a := NewStaticAdapter(nil)
	recs, _ := a.SearchNearby(context.Background(), raleigh, 5, courts.SportBasketball)
	found := false
	for _, r := range recs {
		if r.ID == "static-008" {
			found = true
			if r.Position.Known {
				t.Error("static-008 should carry unknown coordinates")
			}
		}
	}
	if !found {
		t.Error("unknown-coordinate record should survive radius filtering")
	}
}

func TestStaticNoFilterReturnsAllInRadius(t *testing.T) {
	a := NewStaticAdapter(nil)
	all, _ := a.SearchNearby(context.Background(), raleigh, 100, courts.SportAny)
	if len(all) != len(defaultDataset) {
		t.Fatalf("got %d, want full dataset %d within 100km", len(all), len(defaultDataset))
	}
}

func TestStaticCustomDataset(t *testing.T) {
	data := []courts.CourtRecord{
		{ID: "x1", Name: "Test Court", Sport: courts.SportVolleyball, Position: courts.KnownPosition(35.78, -78.64), SourceProvider: courts.SourceStatic},
	}
	a := NewStaticAdapter(data)
	recs, _ := a.SearchNearby(context.Background(), raleigh, 5, courts.SportPickleball)
	if len(recs) != 0 {
		t.Fatalf("pickleball filter over volleyball-only dataset should be empty, got %d", len(recs))
	}
	recs, _ = a.SearchNearby(context.Background(), raleigh, 5, courts.SportVolleyball)
	if len(recs) != 1 {
		t.Fatalf("got %d, want 1", len(recs))
	}
}

func TestDefaultDatasetIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range DefaultDataset() {
		if r.ID == "" || r.Name == "" {
			t.Errorf("record missing id/name: %+v", r)
		}
		if seen[r.ID] {
			t.Errorf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
		if r.Position.Known && !r.Position.Point.Valid() {
			t.Errorf("%s: invalid coordinates", r.ID)
		}
		if r.Rating < 0 || r.Rating > 5 {
			t.Errorf("%s: rating out of range", r.ID)
		}
	}
}
