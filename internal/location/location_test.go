package location

import (
	"math"
	"testing"
)

func TestResolve_KnownCity(t *testing.T) {
	coords, err := Resolve("Helsinki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(coords.Latitude-60.1695) > 0.01 || math.Abs(coords.Longitude-24.9354) > 0.01 {
		t.Errorf("unexpected coordinates: %+v", coords)
	}
}

func TestResolve_Normalization(t *testing.T) {
	variants := []string{"new york", "New York", "NEW YORK", "new_york", "New-York", "  new   york  "}

	for _, name := range variants {
		coords, err := Resolve(name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", name, err)
			continue
		}
		if math.Abs(coords.Latitude-40.7128) > 0.01 {
			t.Errorf("%q: unexpected coordinates: %+v", name, coords)
		}
	}
}

func TestResolve_LatLonLiteral(t *testing.T) {
	coords, err := Resolve("41.9, 12.49")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 41.9 || coords.Longitude != 12.49 {
		t.Errorf("unexpected coordinates: %+v", coords)
	}
}

func TestResolve_NegativeCoordinates(t *testing.T) {
	coords, err := Resolve("-33.87,151.21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != -33.87 || coords.Longitude != 151.21 {
		t.Errorf("unexpected coordinates: %+v", coords)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown city", "atlantis"},
		{"empty", ""},
		{"blank", "   "},
		{"latitude out of range", "91,0"},
		{"longitude out of range", "0,181"},
		{"garbage literal", "abc,def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resolve(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}
