package pipeline

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func TestParamsWithDefaults(t *testing.T) {
	p := Params{Prompt: "x"}.WithDefaults()
	if p.Width != DefaultWidth || p.Height != DefaultHeight {
		t.Fatalf("dims=%dx%d", p.Width, p.Height)
	}
	if p.Steps != DefaultSteps {
		t.Fatalf("steps=%d", p.Steps)
	}
	if p.GuidanceScale != DefaultGuidanceScale {
		t.Fatalf("guidance=%f", p.GuidanceScale)
	}
}

func TestParamsWithDefaultsKeepsExplicit(t *testing.T) {
	p := Params{Prompt: "x", Width: 512, Height: 256, Steps: 4, GuidanceScale: 1.5}.WithDefaults()
	if p.Width != 512 || p.Height != 256 || p.Steps != 4 || p.GuidanceScale != 1.5 {
		t.Fatalf("defaults overwrote explicit values: %+v", p)
	}
}

func TestPlaceholderIsFixedSizePNG(t *testing.T) {
	img := Placeholder()
	b := img.Bounds()
	if b.Dx() != PlaceholderSize || b.Dy() != PlaceholderSize {
		t.Fatalf("placeholder bounds=%v", b)
	}
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, bl, _ := decoded.At(10, 10).RGBA()
	if r>>8 != 100 || g>>8 != 149 || bl>>8 != 237 {
		t.Fatalf("unexpected fill color: %d %d %d", r>>8, g>>8, bl>>8)
	}
}

func TestNewUnknownRuntime(t *testing.T) {
	if _, err := New(Config{Runtime: "onnx"}); err == nil || !strings.Contains(err.Error(), "unknown pipeline runtime") {
		t.Fatalf("err=%v", err)
	}
}

func TestNewSubprocessMissingBinary(t *testing.T) {
	_, err := New(Config{Runtime: RuntimeSubprocess, SDBin: "definitely-not-a-real-binary"})
	if err == nil || !IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestSubprocessBuildArgs(t *testing.T) {
	p := &subprocessPipeline{bin: "sd", modelPath: "/models/z.safetensors", threads: 8}
	args := p.buildArgs(Params{
		Prompt:        "a cat",
		Width:         512,
		Height:        768,
		Steps:         20,
		GuidanceScale: 4.5,
		Seed:          42,
	}, "/tmp/out.png")
	joined := strings.Join(args, " ")
	for _, want := range []string{
		"--mode txt2img",
		"-m /models/z.safetensors",
		"-p a cat",
		"-W 512",
		"-H 768",
		"--steps 20",
		"--cfg-scale 4.5",
		"-s 42",
		"-t 8",
		"-o /tmp/out.png",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("args missing %q: %s", want, joined)
		}
	}
}

func TestSubprocessBuildArgsOmitsOptional(t *testing.T) {
	p := &subprocessPipeline{bin: "sd", modelPath: "/m"}
	joined := strings.Join(p.buildArgs(Params{Prompt: "x"}.WithDefaults(), "/tmp/o.png"), " ")
	if strings.Contains(joined, "-s ") || strings.Contains(joined, "-t ") || strings.Contains(joined, "-n ") {
		t.Fatalf("optional flags present without values: %s", joined)
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsUnavailable(ErrUnavailable("x")) {
		t.Fatal("IsUnavailable")
	}
	if IsUnavailable(ErrLoadFailed("x")) {
		t.Fatal("load failure is not unavailable")
	}
	if !IsLoadFailed(ErrLoadFailed("bad path")) {
		t.Fatal("IsLoadFailed")
	}
	if got := ErrLoadFailed("bad path").Error(); !strings.Contains(got, "bad path") {
		t.Fatalf("err=%q", got)
	}
}
