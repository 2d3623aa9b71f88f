package gemini

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/nfnt/resize"
	"github.com/wailsapp/mimetype"
)

const jpegQuality = 85

// encodePage resizes the page to at most maxWidth (keeping aspect
// ratio, 0 disables the cap) and encodes it as JPEG. It returns the
// encoded bytes and the MIME type detected from them.
func encodePage(img image.Image, maxWidth int) ([]byte, string, error) {
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode page to JPEG: %w", err)
	}

	mimeType := "image/jpeg"
	if mType := mimetype.Detect(buf.Bytes()); mType != nil {
		mimeType = mType.String()
	}

	return buf.Bytes(), mimeType, nil
}
