package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveExplicitLocalPath(t *testing.T) {
	dir := t.TempDir()
	m, err := Resolve(dir)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if !m.Local || m.Path != dir {
		t.Fatalf("got %+v", m)
	}
}

func TestResolveExplicitRemoteID(t *testing.T) {
	m, err := Resolve("someorg/some-model")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if m.Local {
		t.Fatalf("remote id resolved as local: %+v", m)
	}
	if m.Path != "someorg/some-model" {
		t.Fatalf("path=%q", m.Path)
	}
}

func TestResolveFallsBackToRemoteDefault(t *testing.T) {
	wd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	m, err := Resolve("")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if m.Local || m.Path != RemoteModelID {
		t.Fatalf("got %+v", m)
	}
}

func TestResolvePrefersLocalModelDir(t *testing.T) {
	wd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	local := filepath.Join(tmp, LocalModelDir)
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	m, err := Resolve("")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if !m.Local {
		t.Fatalf("expected local model, got %+v", m)
	}
	if filepath.Base(m.Path) != "z-image" {
		t.Fatalf("path=%q", m.Path)
	}
}
