package location

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates is a geographic position used for the sun calculation
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Resolve maps a location name to coordinates. The name is matched
// case-insensitively against the built-in city table; a "lat,lon"
// literal (e.g. "60.17,24.94") is accepted as well. An unknown name is
// a configuration error and should abort startup.
func Resolve(name string) (Coordinates, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Coordinates{}, fmt.Errorf("empty location name")
	}

	if coords, ok := parseLatLon(trimmed); ok {
		return coords, nil
	}

	key := normalize(trimmed)
	if coords, ok := cities[key]; ok {
		return coords, nil
	}

	return Coordinates{}, fmt.Errorf("unknown city %q (pass coordinates as \"lat,lon\" or use --latitude/--longitude)", name)
}

// parseLatLon accepts a "lat,lon" literal
func parseLatLon(s string) (Coordinates, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lonErr != nil {
		return Coordinates{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}

	return Coordinates{Latitude: lat, Longitude: lon}, true
}

// normalize folds case and separators so "New York", "new_york" and
// "new-york" all hit the same table entry
func normalize(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.ReplaceAll(key, "-", " ")
	return strings.Join(strings.Fields(key), " ")
}
