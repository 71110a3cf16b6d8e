package shape

import (
	"errors"
	"fmt"

	"github.com/Faultbox/glprim/pkg/geometry"
)

// ErrSpent is returned by a terminal call on a builder that has already
// produced (or failed to produce) its mesh.
var ErrSpent = errors.New("shape: builder already spent")

var errNoUploader = errors.New("no uploader")

// errNoHandle marks an uploader that reported success without a handle.
var errNoHandle = errors.New("uploader returned no handle")

// ConfigurationError reports an invalid builder setting. It is returned
// before any geometry is generated.
type ConfigurationError struct {
	Shape  geometry.Kind
	Field  string
	Reason string
	// Err is the underlying cause, a *geometry.ParamError for resolution
	// problems.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Shape, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UploadError wraps a failure reported by the render adapter. The
// adapter's error is kept unchanged and is reachable with errors.Is/As.
type UploadError struct {
	Shape geometry.Kind
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s: upload failed: %v", e.Shape, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
