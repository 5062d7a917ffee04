package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// binarizeThreshold separates overlay text from the photo background
// after the contrast stretch.
const binarizeThreshold = 128

// Preprocess prepares a photo for OCR: grayscale, full-range contrast
// stretch, then binarization. Coordinate overlays are rendered text, so
// a hard black/white image gives tesseract the cleanest input.
func Preprocess(img image.Image) image.Image {
	gray := imaging.Grayscale(img)
	stretched := autocontrast(gray)
	return binarize(stretched, binarizeThreshold)
}

// autocontrast linearly remaps pixel values so the darkest pixel becomes
// 0 and the brightest 255. Input is expected to be grayscale (R=G=B).
func autocontrast(img *image.NRGBA) *image.NRGBA {
	lo, hi := uint8(255), uint8(0)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := img.NRGBAAt(x, y).R
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if hi <= lo {
		return img
	}

	scale := 255.0 / float64(hi-lo)
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		v := uint8(float64(c.R-lo)*scale + 0.5)
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})
}

// binarize maps every pixel below the threshold to black and the rest
// to white.
func binarize(img *image.NRGBA, threshold uint8) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R >= threshold {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})
}
