package pipeline

import (
	"context"
	"fmt"
	"image"

	"zimaged/internal/device"
)

// Defaults applied when corresponding Params fields are unset.
const (
	DefaultWidth         = 1024
	DefaultHeight        = 1024
	DefaultSteps         = 28
	DefaultGuidanceScale = 4.0
)

// Runtime selects the pipeline implementation.
type Runtime string

const (
	RuntimeNative     Runtime = "native"
	RuntimeSubprocess Runtime = "subprocess"
)

// Params captures generation parameters passed to a pipeline.
type Params struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	Steps          int
	GuidanceScale  float64
	// Seed 0 lets the runtime choose one.
	Seed int64
}

// WithDefaults returns a copy of p with zero fields replaced by defaults.
func (p Params) WithDefaults() Params {
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Steps <= 0 {
		p.Steps = DefaultSteps
	}
	if p.GuidanceScale <= 0 {
		p.GuidanceScale = DefaultGuidanceScale
	}
	return p
}

// Pipeline is the loaded text-to-image runtime. Implementations must return
// when the context is canceled and are safe for sequential use only.
type Pipeline interface {
	// Generate renders one image for the given parameters, blocking until done.
	Generate(ctx context.Context, params Params) (image.Image, error)
	// Close releases resources associated with the pipeline.
	Close() error
}

// Config holds everything needed to construct a pipeline.
type Config struct {
	// Runtime selects the implementation; empty means native.
	Runtime Runtime
	// ModelPath is a local model directory or file, or a remote identifier.
	ModelPath string
	// SDBin is the stable-diffusion.cpp binary for the subprocess runtime.
	SDBin string
	// Threads caps CPU threads; 0 lets the runtime decide.
	Threads int
	// Device is the compute device selected at startup.
	Device device.Device
	// CPUOffload enables the slow-path optimization when no accelerator exists.
	CPUOffload bool
}

// New constructs the configured pipeline implementation. It validates wiring
// only; heavy model work happens inside the implementation.
func New(cfg Config) (Pipeline, error) {
	switch cfg.Runtime {
	case RuntimeNative, "":
		return newNative(cfg)
	case RuntimeSubprocess:
		return newSubprocess(cfg)
	default:
		return nil, fmt.Errorf("unknown pipeline runtime: %q", cfg.Runtime)
	}
}
