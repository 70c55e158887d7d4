package scan

import "fmt"

// NotFoundError reports that no config file could be resolved at all,
// neither from explicit arguments nor from the default location. The run
// aborts before the schema provider is touched.
type NotFoundError struct {
	Searched []string // paths that were tried
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 1 {
		return fmt.Sprintf("no config file(s) provided and %q does not exist", e.Searched[0])
	}
	return "no config file(s) found"
}

// ReadError reports a resolved config file that could not be opened or read.
// Fatal for the whole run; there is no partial-file recovery.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
