package geo

import (
	"math"
	"testing"
)

func TestDistanceSymmetricAndZero(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 35.7796, Lng: -78.6382}, {Lat: 35.9940, Lng: -78.8986}},
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 180}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
		{{Lat: 89.9, Lng: 10}, {Lat: -89.9, Lng: -170}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance: %f vs %f for %v", ab, ba, p)
		}
	}
	for _, p := range []Point{{Lat: 35.7796, Lng: -78.6382}, {Lat: 0, Lng: 0}} {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("distance(a,a) = %f, want 0", d)
		}
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Raleigh downtown to Durham downtown is roughly 32-36 km.
	d := DistanceKm(Point{Lat: 35.7796, Lng: -78.6382}, Point{Lat: 35.9940, Lng: -78.8986})
	if d < 30 || d > 38 {
		t.Errorf("Raleigh-Durham distance = %f km, want ~33", d)
	}
}

func TestPointValid(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{Lat: 35, Lng: -78}, true},
		{Point{Lat: 90, Lng: 180}, true},
		{Point{Lat: -90, Lng: -180}, true},
		{Point{Lat: 90.01, Lng: 0}, false},
		{Point{Lat: 0, Lng: 180.5}, false},
		{Point{Lat: -91, Lng: 0}, false},
	}
	for _, c := range cases {
		if got := c.p.Valid(); got != c.want {
			t.Errorf("Valid(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestGeohashStable(t *testing.T) {
	a := EncodeGeohash(35.7796, -78.6382, 6)
	b := EncodeGeohash(35.7796, -78.6382, 6)
	if a != b {
		t.Fatalf("geohash not stable: %s vs %s", a, b)
	}
	if len(a) != 6 {
		t.Fatalf("geohash length = %d, want 6", len(a))
	}
	c := EncodeGeohash(35.9940, -78.8986, 6)
	if a == c {
		t.Fatalf("distinct points share geohash %s", a)
	}
}
