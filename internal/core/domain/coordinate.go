package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Coordinate is a parsed GPS position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// coordPattern matches coordinates as rendered by GPS camera overlays,
// e.g. "-6,6386S -51,9896W". Decimal comma and dot are both accepted.
// The longitude direction letter admits E/W plus the Portuguese
// L(este)/O(este), and v as a frequent OCR misread of W.
var coordPattern = regexp.MustCompile(`(-?\d+[\.,]\d+[NSns])\s+(-?\d+[\.,]\d+[EWLOwvloe])`)

// FindCoordinates scans OCR output for a coordinate pair and returns the
// raw match with the two tokens joined by a single space.
func FindCoordinates(text string) (string, bool) {
	m := coordPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1] + " " + m[2], true
}

// ParseCoordinates converts a raw match such as "-6,6386S -51,9896W" into
// a Coordinate. The sign comes from the leading minus in the text, never
// from the direction letter.
func ParseCoordinates(raw string) (Coordinate, error) {
	parts := strings.Fields(strings.TrimSpace(raw))
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: expected two tokens, got %d", ErrMalformedCoordinates, len(parts))
	}

	lat, err := parseComponent(parts[0], "NS")
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: latitude %q", ErrMalformedCoordinates, parts[0])
	}
	lon, err := parseComponent(parts[1], "EWLOV")
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: longitude %q", ErrMalformedCoordinates, parts[1])
	}

	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("%w: %v", ErrInvalidLatitude, lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("%w: %v", ErrInvalidLongitude, lon)
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

func parseComponent(token, directions string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(token))
	s = strings.ReplaceAll(s, ",", ".")
	for _, d := range directions {
		s = strings.ReplaceAll(s, string(d), "")
	}
	return strconv.ParseFloat(s, 64)
}

// Format renders the coordinate for display: "6.6386° S | 51.9896° W".
func (c Coordinate) Format() string {
	latDir := "N"
	if c.Latitude < 0 {
		latDir = "S"
	}
	lonDir := "E"
	if c.Longitude < 0 {
		lonDir = "W"
	}

	return fmt.Sprintf("%.4f° %s | %.4f° %s",
		abs(c.Latitude), latDir, abs(c.Longitude), lonDir)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
