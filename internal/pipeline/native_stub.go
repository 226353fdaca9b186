//go:build !diffusion

package pipeline

// This file provides a no-CGO stub for the native runtime. It is compiled when
// the 'diffusion' build tag is NOT set, keeping default builds and CI CGO-free.
// The real binding lives in native.go (tagged 'diffusion').

// diffusionBuilt indicates whether this binary carries the real binding.
var diffusionBuilt = false

func newNative(cfg Config) (Pipeline, error) {
	// Fail fast: the diffusion runtime is not available in this build.
	return nil, ErrUnavailable("diffusion support not built (missing 'diffusion' build tag)")
}
