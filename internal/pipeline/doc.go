// Package pipeline abstracts the text-to-image runtime used by the manager.
// It is structured into small files by concern:
//
//   - pipeline.go: Pipeline interface, Params, Config, and the New constructor.
//   - errors.go: error types and helpers (IsUnavailable, IsLoadFailed).
//   - native.go: in-process stable-diffusion binding. Enabled with
//     `-tags=diffusion`; a no-CGO stub exists when the tag is not set
//     (native_stub.go) so default builds and CI stay CGO-free.
//   - subprocess.go: runtime that spawns a stable-diffusion.cpp `sd` binary
//     per generation and decodes the PNG it writes.
//   - placeholder.go: the static test image served in mock mode.
//
// External packages should construct pipelines via New and treat every
// implementation as a synchronous, blocking Generate call.
package pipeline
