package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"zimaged/internal/device"
	"zimaged/internal/pipeline"
	"zimaged/pkg/types"
)

// Manager holds the process-wide generation state. The pipeline handle is set
// once before the HTTP server starts; request handlers only read it.
type Manager struct {
	mu  sync.RWMutex
	cfg ManagerConfig

	pipe pipeline.Pipeline
	dev  device.Device

	mock      bool
	mockDelay time.Duration
	mockB64   string

	outputDir string
	log       zerolog.Logger
}

// Ready reports whether the manager can serve generation requests.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mock || m.pipe != nil
}

// Health returns the health snapshot served by GET /health.
func (m *Manager) Health() types.HealthResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return types.HealthResponse{
		Status:      "ok",
		ModelLoaded: m.pipe != nil,
		Mock:        m.mock,
	}
}

// Device returns the compute device selected during load.
func (m *Manager) Device() device.Device {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dev
}

// Close releases the pipeline, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipe == nil {
		return nil
	}
	err := m.pipe.Close()
	m.pipe = nil
	return err
}
