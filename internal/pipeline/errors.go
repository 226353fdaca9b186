package pipeline

// unavailableError signals a missing runtime dependency (e.g. the diffusion
// binding was not compiled in) so callers can refuse to serve instead of 500.
type unavailableError struct{ msg string }

func (e unavailableError) Error() string { return e.msg }

// ErrUnavailable constructs an unavailableError.
func ErrUnavailable(msg string) error { return unavailableError{msg: msg} }

// IsUnavailable reports whether err indicates a missing/failed runtime dependency.
func IsUnavailable(err error) bool {
	_, ok := err.(unavailableError)
	return ok
}

// loadFailedError signals that the model could not be loaded. Load failures
// are fatal for the process: the daemon never serves without a pipeline.
type loadFailedError struct{ msg string }

func (e loadFailedError) Error() string { return "load failed: " + e.msg }

// ErrLoadFailed constructs a loadFailedError.
func ErrLoadFailed(msg string) error { return loadFailedError{msg: msg} }

// IsLoadFailed reports whether err indicates a model load failure.
func IsLoadFailed(err error) bool {
	_, ok := err.(loadFailedError)
	return ok
}
