package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"gps-coord-bot/internal/config"
	"gps-coord-bot/internal/core/domain"
	"gps-coord-bot/internal/core/ports/output"
)

type tesseractClient struct {
	language    string
	pageSegMode gosseract.PageSegMode
}

// NewTesseractClient creates an OCR adapter backed by the system
// tesseract installation via gosseract.
func NewTesseractClient(cfg *config.OCRConfig) ports.OCRClient {
	lang := cfg.Language
	if lang == "" {
		lang = "por"
	}
	return &tesseractClient{
		language:    lang,
		pageSegMode: gosseract.PageSegMode(cfg.PageSegMode),
	}
}

// Recognize decodes the image, applies the preprocessing pipeline and
// runs tesseract over the result. A gosseract client is created per
// call; the cgo handle is not safe for concurrent use.
func (c *tesseractClient) Recognize(ctx context.Context, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	processed := Preprocess(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, processed); err != nil {
		return "", fmt.Errorf("encode preprocessed image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(c.language); err != nil {
		return "", fmt.Errorf("set ocr language %q: %w", c.language, err)
	}
	if err := client.SetPageSegMode(c.pageSegMode); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("load image into tesseract: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("run ocr: %w", err)
	}
	return text, nil
}
