package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// subprocessPipeline spawns a stable-diffusion.cpp `sd` binary per generation
// and decodes the PNG it writes. Unlike the native runtime it passes guidance
// and seed straight through to the CLI.
type subprocessPipeline struct {
	bin       string
	modelPath string
	threads   int
	cpuOnly   bool
}

func newSubprocess(cfg Config) (Pipeline, error) {
	bin := strings.TrimSpace(cfg.SDBin)
	if bin == "" {
		bin = "sd"
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, ErrUnavailable(fmt.Sprintf("sd binary %q not found in PATH", bin))
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, ErrLoadFailed(fmt.Sprintf("model path %s: %v", cfg.ModelPath, err))
	}
	return &subprocessPipeline{
		bin:       resolved,
		modelPath: cfg.ModelPath,
		threads:   cfg.Threads,
		cpuOnly:   cfg.CPUOffload,
	}, nil
}

// buildArgs maps Params onto stable-diffusion.cpp CLI flags.
func (p *subprocessPipeline) buildArgs(params Params, outPath string) []string {
	args := []string{
		"--mode", "txt2img",
		"-m", p.modelPath,
		"-p", params.Prompt,
		"-W", strconv.Itoa(params.Width),
		"-H", strconv.Itoa(params.Height),
		"--steps", strconv.Itoa(params.Steps),
		"--cfg-scale", strconv.FormatFloat(params.GuidanceScale, 'f', -1, 64),
		"-o", outPath,
	}
	if params.NegativePrompt != "" {
		args = append(args, "-n", params.NegativePrompt)
	}
	if params.Seed != 0 {
		args = append(args, "-s", strconv.FormatInt(params.Seed, 10))
	}
	threads := p.threads
	if threads <= 0 && p.cpuOnly {
		// CPU fallback: pin threads to all cores instead of the CLI default.
		threads = runtime.NumCPU()
	}
	if threads > 0 {
		args = append(args, "-t", strconv.Itoa(threads))
	}
	return args
}

func (p *subprocessPipeline) Generate(ctx context.Context, params Params) (image.Image, error) {
	params = params.WithDefaults()
	out := filepath.Join(os.TempDir(), fmt.Sprintf("zimaged-%d.png", rand.Int63()))
	defer os.Remove(out)

	cmd := exec.CommandContext(ctx, p.bin, p.buildArgs(params, out)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("sd subprocess: %s", msg)
	}

	f, err := os.Open(out)
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

func (p *subprocessPipeline) Close() error { return nil }
