package device

import (
	"errors"
	"testing"
)

func withProbes(t *testing.T, stat func(string) bool, look func(string) (string, error), run func(string, ...string) (string, error)) {
	t.Helper()
	origStat, origLook, origRun := statPath, lookPath, runQuery
	statPath, lookPath, runQuery = stat, look, run
	t.Cleanup(func() { statPath, lookPath, runQuery = origStat, origLook, origRun })
}

func TestDetectCPUFallback(t *testing.T) {
	withProbes(t,
		func(string) bool { return false },
		func(string) (string, error) { return "", errors.New("not found") },
		func(string, ...string) (string, error) { return "", errors.New("no device") },
	)
	d := Detect()
	if d.Kind != KindCPU || !d.CPU() {
		t.Fatalf("expected cpu fallback, got %+v", d)
	}
}

func TestDetectCUDAWithName(t *testing.T) {
	withProbes(t,
		func(p string) bool { return p == "/dev/nvidia0" },
		func(string) (string, error) { return "/usr/bin/nvidia-smi", nil },
		func(string, ...string) (string, error) { return "NVIDIA RTX 4090\nNVIDIA RTX 4090", nil },
	)
	d := Detect()
	if d.Kind != KindCUDA {
		t.Fatalf("kind=%s", d.Kind)
	}
	if d.Name != "NVIDIA RTX 4090" {
		t.Fatalf("name=%q", d.Name)
	}
}

func TestDetectCUDAWithoutSMI(t *testing.T) {
	withProbes(t,
		func(p string) bool { return p == "/dev/nvidiactl" },
		func(string) (string, error) { return "", errors.New("not found") },
		func(string, ...string) (string, error) { return "", errors.New("no device") },
	)
	if d := Detect(); d.Kind != KindCUDA || d.Name != "" {
		t.Fatalf("got %+v", d)
	}
}

func TestDetectROCm(t *testing.T) {
	withProbes(t,
		func(p string) bool { return p == "/dev/kfd" },
		func(bin string) (string, error) {
			if bin == "rocm-smi" {
				return "/usr/bin/rocm-smi", nil
			}
			return "", errors.New("not found")
		},
		func(string, ...string) (string, error) { return "", nil },
	)
	if d := Detect(); d.Kind != KindROCm {
		t.Fatalf("got %+v", d)
	}
}
