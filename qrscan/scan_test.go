package qrscan_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrmudry/labgrader/qrscan"
)

// encodeQR renders payload as a QR code image.
func encodeQR(t *testing.T, payload string) image.Image {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(
		payload, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	require.NoError(t, err)
	return matrix
}

// blankPage is a plain white image with nothing to decode.
func blankPage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return img
}

// lowContrast remaps a QR image to gray levels 100 and 200, the kind
// of glare-washed scan the thresholded fallback pass exists for.
func lowContrast(src image.Image) image.Image {
	bounds := src.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			if gray.Y < 128 {
				out.SetGray(x, y, color.Gray{Y: 100})
			} else {
				out.SetGray(x, y, color.Gray{Y: 200})
			}
		}
	}
	return out
}

func TestScanExtractsSIDDigits(t *testing.T) {
	sid, ok := qrscan.Scan(encodeQR(t, "SID:123456"))
	require.True(t, ok)
	assert.Equal(t, "123456", sid)
}

func TestScanReturnsRawValueWhenPatternMissing(t *testing.T) {
	sid, ok := qrscan.Scan(encodeQR(t, "hello-world"))
	require.True(t, ok)
	assert.Equal(t, "hello-world", sid)
}

func TestScanAbsence(t *testing.T) {
	sid, ok := qrscan.Scan(blankPage())
	assert.False(t, ok)
	assert.Equal(t, "", sid)
}

func TestScanLowContrastFallback(t *testing.T) {
	sid, ok := qrscan.Scan(lowContrast(encodeQR(t, "SID:654321")))
	require.True(t, ok)
	assert.Equal(t, "654321", sid)
}

func TestFirstHitWins(t *testing.T) {
	pages := []image.Image{
		blankPage(),
		encodeQR(t, "SID:000111"),
		encodeQR(t, "SID:999999"),
	}
	sid, ok := qrscan.First(pages)
	require.True(t, ok)
	assert.Equal(t, "000111", sid)
}

func TestFirstAllAbsent(t *testing.T) {
	_, ok := qrscan.First([]image.Image{blankPage(), blankPage()})
	assert.False(t, ok)

	_, ok = qrscan.First(nil)
	assert.False(t, ok)
}

func TestScannerAdapter(t *testing.T) {
	sid, ok := qrscan.Scanner{}.First([]image.Image{encodeQR(t, "SID:42")})
	require.True(t, ok)
	assert.Equal(t, "42", sid)
}
