package draftpatch

import (
	"github.com/pkg/errors"
)

var (
	// ErrIllegalState indicates an operation that can never be applied, like
	// one with an empty path. Replacing the root of a document isn't possible
	// in place
	ErrIllegalState = errors.New("illegal state")
	// ErrUnresolvablePath means a path doesn't exist in the target document,
	// usually because the target has diverged from the document the patch
	// was generated against
	ErrUnresolvablePath = errors.New("cannot apply patch, path doesn't resolve")
	// ErrUnsupportedOperation is returned for an op other than add, remove &
	// replace
	ErrUnsupportedOperation = errors.New("unsupported patch operation")
	// ErrNotJSONPatch is returned when an operation has no RFC 6902 equivalent
	ErrNotJSONPatch = errors.New("operation cannot be expressed as a JSON patch")
)
