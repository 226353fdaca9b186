package registry

import (
	"path/filepath"

	"zimaged/internal/common/fsutil"
)

// Defaults for model resolution. LocalModelDir is preferred when it exists on
// disk; RemoteModelID is the fallback identifier handed to the runtime.
const (
	LocalModelDir = "models/z-image"
	RemoteModelID = "Tongyi-MAI/Z-Image"
)

// Model describes the resolved model source.
type Model struct {
	// ID or local path handed to the pipeline runtime.
	Path string
	// Local reports whether Path points at an existing directory or file.
	Local bool
}

// Resolve picks the model to load. An explicit value wins (with '~' expansion);
// otherwise the project-local model directory is preferred when present, else
// the remote identifier is returned.
func Resolve(explicit string) (Model, error) {
	if explicit != "" {
		p, err := fsutil.ExpandHome(explicit)
		if err != nil {
			return Model{}, err
		}
		if abs, err := filepath.Abs(p); err == nil && fsutil.PathExists(abs) {
			return Model{Path: abs, Local: true}, nil
		}
		// Not on disk: treat it as a remote identifier.
		return Model{Path: p}, nil
	}
	if fsutil.IsDir(LocalModelDir) {
		abs, err := filepath.Abs(LocalModelDir)
		if err != nil {
			return Model{}, err
		}
		return Model{Path: abs, Local: true}, nil
	}
	return Model{Path: RemoteModelID}, nil
}
