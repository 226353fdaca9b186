//go:build diffusion

package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	stableDiffusion "github.com/mudler/go-stable-diffusion"
)

// diffusionBuilt indicates this binary was compiled with the real binding.
var diffusionBuilt = true

// nativePipeline runs the in-process stable-diffusion binding. The binding is
// stateless; the model directory is passed on every call.
type nativePipeline struct {
	modelDir string
	threads  int
}

func newNative(cfg Config) (Pipeline, error) {
	info, err := os.Stat(cfg.ModelPath)
	if err != nil {
		return nil, ErrLoadFailed(fmt.Sprintf("model path %s: %v", cfg.ModelPath, err))
	}
	if !info.IsDir() {
		return nil, ErrLoadFailed(fmt.Sprintf("model path %s is not a directory", cfg.ModelPath))
	}
	return &nativePipeline{modelDir: cfg.ModelPath, threads: cfg.Threads}, nil
}

func (p *nativePipeline) Generate(ctx context.Context, params Params) (image.Image, error) {
	params = params.WithDefaults()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed := int(params.Seed)
	if seed == 0 {
		seed = rand.Int()
	}

	dst := filepath.Join(os.TempDir(), fmt.Sprintf("zimaged-%d.png", rand.Int63()))
	defer os.Remove(dst)

	// The binding renders at most 512x512 directly; larger targets go through
	// its upscaling entry point. It exposes no guidance knob.
	var err error
	if params.Height > 512 || params.Width > 512 {
		err = stableDiffusion.GenerateImageUpscaled(
			params.Height, params.Width, params.Steps, seed,
			params.Prompt, params.NegativePrompt, dst, p.modelDir,
		)
	} else {
		err = stableDiffusion.GenerateImage(
			params.Height, params.Width, 0, params.Steps, seed,
			params.Prompt, params.NegativePrompt, dst, "", p.modelDir,
		)
	}
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dst)
	if err != nil {
		return nil, fmt.Errorf("open generated image: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode generated image: %w", err)
	}
	return img, nil
}

func (p *nativePipeline) Close() error { return nil }
