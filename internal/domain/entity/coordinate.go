// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strconv"
	"strings"

	"achaperto/internal/errors"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinate is returned when a "lat,lng" string cannot be parsed into a valid coordinate.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the coordinate as an orb.Point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// IsValid checks the coordinate is finite and inside Earth bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}

// String formats the coordinate the way clients send it ("lat,lng").
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}

// ParseCoordinate parses a "lat,lng" string as sent by the browser geolocation API.
func ParseCoordinate(raw string) (Coordinate, error) {
	latRaw, lngRaw, ok := strings.Cut(strings.TrimSpace(raw), ",")
	if !ok {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "missing separator in %q", raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "latitude %q", latRaw)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "longitude %q", lngRaw)
	}

	coord := Coordinate{Lat: lat, Lng: lng}
	if !coord.IsValid() {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "out of bounds: %q", raw)
	}

	return coord, nil
}
