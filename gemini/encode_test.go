package gemini

import (
	"bytes"
	"image"
	"image/jpeg"
)

func decodeJPEGBounds(data []byte) (image.Rectangle, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}
