package manager

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"zimaged/internal/device"
	"zimaged/internal/pipeline"
)

// fakePipeline renders a solid image at the requested size, or fails.
type fakePipeline struct {
	err error
	// fixedSize overrides the requested dimensions when non-zero.
	fixedSize int
	calls     int
	lastSeed  int64
	closed    bool
}

func (f *fakePipeline) Generate(_ context.Context, params pipeline.Params) (image.Image, error) {
	f.calls++
	f.lastSeed = params.Seed
	if f.err != nil {
		return nil, f.err
	}
	w, h := params.Width, params.Height
	if f.fixedSize > 0 {
		w, h = f.fixedSize, f.fixedSize
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img, nil
}

func (f *fakePipeline) Close() error {
	f.closed = true
	return nil
}

var errFakeLoad = errors.New("fake load refused")

// withFakePipeline routes LoadPipeline to fake and silences device probing.
func withFakePipeline(t *testing.T, fake pipeline.Pipeline, loadErr error) {
	t.Helper()
	origNew, origDetect := newPipeline, detect
	newPipeline = func(pipeline.Config) (pipeline.Pipeline, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		return fake, nil
	}
	detect = func() device.Device { return device.Device{Kind: device.KindCPU} }
	t.Cleanup(func() { newPipeline, detect = origNew, origDetect })
}
