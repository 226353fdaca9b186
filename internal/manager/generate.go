package manager

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zimaged/internal/pipeline"
	"zimaged/pkg/types"
)

// timestampLayout names saved files {timestamp}_{width}x{height}.png.
const timestampLayout = "20060102_150405"

// now is replaceable in tests for deterministic file names.
var now = time.Now

// Generate runs one synchronous generation for req. Mock mode returns the
// cached placeholder after the configured delay; an absent pipeline maps to
// 503 via IsPipelineNotLoaded; every other failure is terminal for this
// request only.
func (m *Manager) Generate(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error) {
	m.mu.RLock()
	pipe := m.pipe
	mock := m.mock
	m.mu.RUnlock()

	if mock {
		if m.mockDelay > 0 {
			select {
			case <-time.After(m.mockDelay):
			case <-ctx.Done():
				return types.GenerateResponse{}, ctx.Err()
			}
		}
		return types.GenerateResponse{Image: m.mockB64, MimeType: "image/png"}, nil
	}

	if pipe == nil {
		return types.GenerateResponse{}, ErrPipelineNotLoaded()
	}

	params := pipeline.Params{
		Prompt:        req.Prompt,
		Width:         req.Width,
		Height:        req.Height,
		Steps:         req.Steps,
		GuidanceScale: req.GuidanceScale,
		Seed:          req.Seed,
	}.WithDefaults()

	t0 := now()
	img, err := pipe.Generate(ctx, params)
	if err != nil {
		m.log.Error().Err(err).Msg("generation failed")
		return types.GenerateResponse{}, err
	}
	elapsed := time.Since(t0)

	data, err := pipeline.EncodePNG(img)
	if err != nil {
		m.log.Error().Err(err).Msg("generation failed")
		return types.GenerateResponse{}, fmt.Errorf("encode png: %w", err)
	}

	savedPath := ""
	if m.outputDir != "" {
		name := fmt.Sprintf("%s_%dx%d.png", now().Format(timestampLayout), params.Width, params.Height)
		savedPath = filepath.Join(m.outputDir, name)
		if err := os.WriteFile(savedPath, data, 0o644); err != nil {
			m.log.Error().Err(err).Msg("generation failed")
			return types.GenerateResponse{}, fmt.Errorf("save image: %w", err)
		}
		m.log.Info().Str("path", savedPath).Msg("image saved")
	}

	m.log.Info().
		Int("width", params.Width).
		Int("height", params.Height).
		Int("steps", params.Steps).
		Dur("elapsed", elapsed).
		Msg("generated image")

	return types.GenerateResponse{
		Image:    base64.StdEncoding.EncodeToString(data),
		MimeType: "image/png",
		FilePath: savedPath,
	}, nil
}
