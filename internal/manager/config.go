package manager

import (
	"time"

	"github.com/rs/zerolog"

	"zimaged/internal/pipeline"
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// ModelPath is the resolved model directory or remote identifier.
	ModelPath string
	// OutputDir, when non-empty, receives one timestamped PNG per generation.
	OutputDir string
	// Runtime selects the pipeline implementation (native or subprocess).
	Runtime pipeline.Runtime
	// SDBin is the stable-diffusion.cpp binary for the subprocess runtime.
	SDBin string
	// Threads caps CPU threads for the runtime; 0 lets it decide.
	Threads int
	// MockDelay is the simulated generation latency in mock mode.
	MockDelay time.Duration
	// Logger used for structured logs. If nil, logging is disabled.
	Logger *zerolog.Logger
}

// New constructs a Manager from ManagerConfig. The Manager starts with no
// pipeline loaded; callers pick exactly one of LoadPipeline or InitMock
// before serving.
func New(cfg ManagerConfig) *Manager {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Manager{
		cfg:       cfg,
		mockDelay: cfg.MockDelay,
		outputDir: cfg.OutputDir,
		log:       log,
	}
}
