package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zimaged/internal/pipeline"
)

// Fixed self-test generation: a deterministic prompt at 512x512 with a pinned
// seed so the output shape check is meaningful.
const (
	selfTestPrompt = "a red circle on a white background"
	selfTestSize   = 512
	selfTestSeed   = 42
)

// SelfTest loads the real pipeline, runs one generation, and verifies the
// output dimensions. A non-nil error means the process must exit non-zero.
func (m *Manager) SelfTest(ctx context.Context) error {
	if err := m.LoadPipeline(); err != nil {
		return err
	}

	m.log.Info().Msg("running self-test: generating test image")
	t0 := time.Now()
	img, err := m.pipe.Generate(ctx, pipeline.Params{
		Prompt:        selfTestPrompt,
		Width:         selfTestSize,
		Height:        selfTestSize,
		Steps:         pipeline.DefaultSteps,
		GuidanceScale: pipeline.DefaultGuidanceScale,
		Seed:          selfTestSeed,
	})
	if err != nil {
		return fmt.Errorf("self-test generation: %w", err)
	}
	elapsed := time.Since(t0)

	b := img.Bounds()
	if b.Dx() != selfTestSize || b.Dy() != selfTestSize {
		return fmt.Errorf("self-test: expected %dx%d, got %dx%d", selfTestSize, selfTestSize, b.Dx(), b.Dy())
	}

	data, err := pipeline.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("self-test encode: %w", err)
	}
	out := "test_output.png"
	if m.outputDir != "" {
		out = filepath.Join(m.outputDir, out)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("self-test save: %w", err)
	}
	m.log.Info().
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Dur("elapsed", elapsed).
		Str("path", out).
		Msg("self-test passed")
	return nil
}
