package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCoordinates(t *testing.T) {
	raw, ok := FindCoordinates("GPS Map Camera\n-6,6386S -51,9896W\nAltitude: 230m")
	assert.True(t, ok)
	assert.Equal(t, "-6,6386S -51,9896W", raw)
}

func TestFindCoordinates_DotDecimal(t *testing.T) {
	raw, ok := FindCoordinates("-6.6386S -51.9896W")
	assert.True(t, ok)
	assert.Equal(t, "-6.6386S -51.9896W", raw)
}

func TestFindCoordinates_LowercaseDirections(t *testing.T) {
	raw, ok := FindCoordinates("ruído -6,6386s -51,9896w ruído")
	assert.True(t, ok)
	assert.Equal(t, "-6,6386s -51,9896w", raw)
}

func TestFindCoordinates_MisreadWDirection(t *testing.T) {
	// tesseract commonly reads the overlay's W as v.
	raw, ok := FindCoordinates("-6,6386S -51,9896v")
	assert.True(t, ok)
	assert.Equal(t, "-6,6386S -51,9896v", raw)
}

func TestFindCoordinates_PortugueseDirections(t *testing.T) {
	raw, ok := FindCoordinates("-6,6386S -51,9896O")
	assert.True(t, ok)
	assert.Equal(t, "-6,6386S -51,9896O", raw)
}

func TestFindCoordinates_ExtraWhitespace(t *testing.T) {
	raw, ok := FindCoordinates("-6,6386S   -51,9896W")
	assert.True(t, ok)
	assert.Equal(t, "-6,6386S -51,9896W", raw)
}

func TestFindCoordinates_NotFound(t *testing.T) {
	_, ok := FindCoordinates("nenhuma coordenada aqui")
	assert.False(t, ok)
}

func TestFindCoordinates_SingleToken(t *testing.T) {
	_, ok := FindCoordinates("-6,6386S")
	assert.False(t, ok)
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("-6,6386S -51,9896W")
	assert.NoError(t, err)
	assert.InDelta(t, -6.6386, c.Latitude, 1e-9)
	assert.InDelta(t, -51.9896, c.Longitude, 1e-9)
}

func TestParseCoordinates_PositiveValues(t *testing.T) {
	c, err := ParseCoordinates("6,6386N 51,9896E")
	assert.NoError(t, err)
	assert.InDelta(t, 6.6386, c.Latitude, 1e-9)
	assert.InDelta(t, 51.9896, c.Longitude, 1e-9)
}

func TestParseCoordinates_LowercaseDirections(t *testing.T) {
	c, err := ParseCoordinates("-6,6386s -51,9896w")
	assert.NoError(t, err)
	assert.InDelta(t, -6.6386, c.Latitude, 1e-9)
	assert.InDelta(t, -51.9896, c.Longitude, 1e-9)
}

func TestParseCoordinates_PortugueseDirections(t *testing.T) {
	c, err := ParseCoordinates("-6,6386S -51,9896L")
	assert.NoError(t, err)
	assert.InDelta(t, -51.9896, c.Longitude, 1e-9)
}

func TestParseCoordinates_MisreadWDirection(t *testing.T) {
	c, err := ParseCoordinates("-6,6386S -51,9896v")
	assert.NoError(t, err)
	assert.InDelta(t, -6.6386, c.Latitude, 1e-9)
	assert.InDelta(t, -51.9896, c.Longitude, 1e-9)
}

func TestParseCoordinates_SignFromText(t *testing.T) {
	// The direction letter never flips the sign; only the leading minus does.
	c, err := ParseCoordinates("6,6386S 51,9896W")
	assert.NoError(t, err)
	assert.InDelta(t, 6.6386, c.Latitude, 1e-9)
	assert.InDelta(t, 51.9896, c.Longitude, 1e-9)
}

func TestParseCoordinates_LatitudeOutOfRange(t *testing.T) {
	_, err := ParseCoordinates("-96,6386S -51,9896W")
	assert.ErrorIs(t, err, ErrInvalidLatitude)
}

func TestParseCoordinates_LongitudeOutOfRange(t *testing.T) {
	_, err := ParseCoordinates("-6,6386S -181,9896W")
	assert.ErrorIs(t, err, ErrInvalidLongitude)
}

func TestParseCoordinates_SingleToken(t *testing.T) {
	_, err := ParseCoordinates("-6,6386S")
	assert.ErrorIs(t, err, ErrMalformedCoordinates)
}

func TestParseCoordinates_Garbage(t *testing.T) {
	_, err := ParseCoordinates("abc def")
	assert.ErrorIs(t, err, ErrMalformedCoordinates)
}

func TestCoordinateFormat_SouthWest(t *testing.T) {
	c := Coordinate{Latitude: -6.6386, Longitude: -51.9896}
	assert.Equal(t, "6.6386° S | 51.9896° W", c.Format())
}

func TestCoordinateFormat_NorthEast(t *testing.T) {
	c := Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	assert.Equal(t, "48.8566° N | 2.3522° E", c.Format())
}

func TestCoordinateFormat_Zero(t *testing.T) {
	c := Coordinate{}
	assert.Equal(t, "0.0000° N | 0.0000° E", c.Format())
}
