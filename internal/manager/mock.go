package manager

import (
	"encoding/base64"
	"fmt"

	"zimaged/internal/pipeline"
)

// InitMock switches the manager to mock mode and caches the encoded
// placeholder so every response reuses the same blob. No model is loaded.
func (m *Manager) InitMock() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipe != nil {
		return fmt.Errorf("pipeline already loaded, refusing mock mode")
	}
	data, err := pipeline.EncodePNG(pipeline.Placeholder())
	if err != nil {
		return fmt.Errorf("encode placeholder: %w", err)
	}
	m.mock = true
	m.mockB64 = base64.StdEncoding.EncodeToString(data)
	m.log.Info().
		Int("size", pipeline.PlaceholderSize).
		Msg("mock mode initialized")
	return nil
}
