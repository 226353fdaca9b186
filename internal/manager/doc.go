// Package manager owns the process-wide generation state: the pipeline
// handle, the mock-mode placeholder, and the output directory. It is
// structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults.
//   - errors.go: error types and helpers (IsPipelineNotLoaded).
//   - load.go: one-shot pipeline loading (unloaded -> loaded, irreversible).
//   - mock.go: mock-mode initialization with the cached placeholder blob.
//   - generate.go: the generation entry point, PNG encoding, persistence.
//   - selftest.go: the one-shot startup check exercising the real pipeline.
//
// The pipeline handle transitions from absent to present exactly once,
// before the HTTP server starts serving. Handlers only ever read it.
package manager
