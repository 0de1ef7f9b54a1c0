package exportsvc

import "fmt"

// ExportError aborts an export during rendering, hashing, signing, or
// bundling. Partial files may exist on disk but the run is never reported as
// complete. Upload failures are not ExportErrors; see uploader.Error.
type ExportError struct {
	Stage string
	Err   error
}

func (e *ExportError) Error() string { return fmt.Sprintf("export %s: %v", e.Stage, e.Err) }

func (e *ExportError) Unwrap() error { return e.Err }
