package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	p := writeTemp(t, "cfg.yaml", "host: 127.0.0.1\nport: 9000\nmock: true\nmock_delay: 0.25\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 9000 || !cfg.Mock || cfg.MockDelay != 0.25 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	p := writeTemp(t, "cfg.json", `{"model":"/models/z-image","output_dir":"out","threads":4}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Model != "/models/z-image" || cfg.OutputDir != "out" || cfg.Threads != 4 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	p := writeTemp(t, "cfg.toml", "runtime = \"subprocess\"\nsd_bin = \"/usr/local/bin/sd\"\nlog_level = \"debug\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Runtime != "subprocess" || cfg.SDBin != "/usr/local/bin/sd" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	p := writeTemp(t, "cfg.ini", "host=127.0.0.1\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	p := writeTemp(t, "bad.yaml", "host: [unclosed\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}
