package manager

import (
	"fmt"
	"time"

	"zimaged/internal/device"
	"zimaged/internal/pipeline"
)

// Seams replaceable in tests.
var (
	detect      = device.Detect
	newPipeline = pipeline.New
)

// LoadPipeline loads the configured model runtime. It may be called at most
// once, before serving begins; a failed load is fatal for the process.
func (m *Manager) LoadPipeline() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipe != nil {
		return fmt.Errorf("pipeline already loaded")
	}
	if m.mock {
		return fmt.Errorf("mock mode active, refusing to load a model")
	}

	dev := detect()
	switch dev.Kind {
	case device.KindCPU:
		m.log.Info().Msg("using CPU (slow)")
	default:
		m.log.Info().Str("device", string(dev.Kind)).Str("name", dev.Name).Msg("using accelerator")
	}

	m.log.Info().Str("model", m.cfg.ModelPath).Msg("loading model")
	t0 := time.Now()
	pipe, err := newPipeline(pipeline.Config{
		Runtime:    m.cfg.Runtime,
		ModelPath:  m.cfg.ModelPath,
		SDBin:      m.cfg.SDBin,
		Threads:    m.cfg.Threads,
		Device:     dev,
		CPUOffload: dev.CPU(),
	})
	if err != nil {
		return err
	}
	m.pipe = pipe
	m.dev = dev
	m.log.Info().Dur("elapsed", time.Since(t0)).Msg("model loaded")
	return nil
}
