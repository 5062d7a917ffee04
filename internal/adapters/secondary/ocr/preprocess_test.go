package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grayImage(values [][]uint8) *image.NRGBA {
	h := len(values)
	w := len(values[0])
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := values[y][x]
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestAutocontrast_StretchesFullRange(t *testing.T) {
	// Low-contrast input: values between 100 and 150.
	img := grayImage([][]uint8{
		{100, 125},
		{150, 100},
	})

	out := autocontrast(img)

	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(255), out.NRGBAAt(0, 1).R)
	mid := out.NRGBAAt(1, 0).R
	assert.Greater(t, mid, uint8(100))
	assert.Less(t, mid, uint8(155))
}

func TestAutocontrast_FlatImageUnchanged(t *testing.T) {
	img := grayImage([][]uint8{
		{80, 80},
		{80, 80},
	})

	out := autocontrast(img)

	assert.Equal(t, uint8(80), out.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(80), out.NRGBAAt(1, 1).R)
}

func TestBinarize(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 127},
		{128, 255},
	})

	out := binarize(img, 128)

	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), out.NRGBAAt(1, 0).R)
	assert.Equal(t, uint8(255), out.NRGBAAt(0, 1).R)
	assert.Equal(t, uint8(255), out.NRGBAAt(1, 1).R)
}

func TestPreprocess_ProducesBlackAndWhiteOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 90, A: 255})
		}
	}

	out := Preprocess(img)

	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			v := uint8(r >> 8)
			assert.True(t, v == 0 || v == 255, "pixel (%d,%d) = %d", x, y, v)
			assert.Equal(t, r, g)
			assert.Equal(t, r, b)
		}
	}
}
