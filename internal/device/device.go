// Package device probes the host for accelerator support. The daemon prefers
// a GPU-class device and falls back to CPU with an explicit slow-path flag.
package device

import (
	"os"
	"os/exec"
	"strings"
)

// Kind identifies the class of compute device selected for inference.
type Kind string

const (
	KindCUDA Kind = "cuda"
	KindROCm Kind = "rocm"
	KindCPU  Kind = "cpu"
)

// Device describes the selected compute device.
type Device struct {
	Kind Kind
	// Name is the human-readable device name when one could be queried.
	Name string
}

// CPU reports whether the device is the CPU fallback.
func (d Device) CPU() bool { return d.Kind == KindCPU }

// Probe hooks, replaceable in tests.
var (
	statPath = func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	}
	lookPath = exec.LookPath
	runQuery = func(bin string, args ...string) (string, error) {
		out, err := exec.Command(bin, args...).Output()
		return strings.TrimSpace(string(out)), err
	}
)

// Detect probes for the best available device: cuda > rocm > cpu.
func Detect() Device {
	if statPath("/dev/nvidia0") || statPath("/dev/nvidiactl") {
		if _, err := lookPath("nvidia-smi"); err == nil {
			name, err := runQuery("nvidia-smi", "--query-gpu=name", "--format=csv,noheader")
			if err == nil && name != "" {
				// Multiple GPUs report one name per line; the first device is used.
				if i := strings.IndexByte(name, '\n'); i >= 0 {
					name = name[:i]
				}
				return Device{Kind: KindCUDA, Name: name}
			}
		}
		return Device{Kind: KindCUDA}
	}
	if statPath("/dev/kfd") {
		if _, err := lookPath("rocm-smi"); err == nil {
			return Device{Kind: KindROCm, Name: "rocm"}
		}
		return Device{Kind: KindROCm}
	}
	return Device{Kind: KindCPU}
}
