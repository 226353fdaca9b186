package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Placeholder dimensions and fill used by mock mode. The color is cornflower
// blue so mock responses are visually unmistakable.
const (
	PlaceholderSize = 64
)

var placeholderFill = color.RGBA{R: 100, G: 149, B: 237, A: 255}

// Placeholder returns the static test image served in mock mode.
func Placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	for y := 0; y < PlaceholderSize; y++ {
		for x := 0; x < PlaceholderSize; x++ {
			img.Set(x, y, placeholderFill)
		}
	}
	return img
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
