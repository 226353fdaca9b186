package manager

// pipelineNotLoadedError signals that no pipeline is available for the
// request, so the HTTP layer can return 503 Service Unavailable.
type pipelineNotLoadedError struct{}

func (pipelineNotLoadedError) Error() string { return "model not loaded" }

// ErrPipelineNotLoaded constructs a pipelineNotLoadedError.
func ErrPipelineNotLoaded() error { return pipelineNotLoadedError{} }

// IsPipelineNotLoaded reports whether err indicates an absent pipeline.
func IsPipelineNotLoaded(err error) bool {
	_, ok := err.(pipelineNotLoadedError)
	return ok
}
