package ports

import "context"

// OCRClient turns image bytes into text. Implementations own decoding
// and any preprocessing the engine needs.
type OCRClient interface {
	Recognize(ctx context.Context, data []byte) (string, error)
}
