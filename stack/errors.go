package stack

import "errors"

// Sentinel errors returned by arena operations. Operations wrap these with
// context; match with errors.Is.
var (
	// ErrInvalid indicates a nil, released, or foreign handle, or an
	// argument that violates a configured limit.
	ErrInvalid = errors.New("stack: invalid handle")

	// ErrFull indicates the arena lacks room for the requested entry, or
	// the configured entry-count limit has been reached.
	ErrFull = errors.New("stack: full")

	// ErrEmpty indicates a pop or peek on an arena with no entries.
	ErrEmpty = errors.New("stack: no entries")

	// ErrBufferOverflow indicates the caller's buffer is smaller than the
	// top entry's payload.
	ErrBufferOverflow = errors.New("stack: output buffer too small")

	// ErrMaxRefcount indicates the reference count is saturated.
	ErrMaxRefcount = errors.New("stack: refcount at maximum")

	// ErrOutOfMemory indicates the backing buffer could not be allocated
	// within the configured limits.
	ErrOutOfMemory = errors.New("stack: allocation failed")

	// ErrInternal indicates corrupt bookkeeping discovered mid-operation.
	ErrInternal = errors.New("stack: internal error")
)

// Code is the compact numeric form of the error taxonomy, used by tools for
// exit codes and wire-level diagnostics.
type Code uint32

const (
	CodeOK Code = iota
	CodeFull
	CodeInvalid
	CodeOutOfMemory
	CodeEmpty
	CodeInternal
	CodeBufferOverflow
	CodeMaxRefcount

	numCodes
)

// codeUnknown is returned by String for out-of-range codes.
const codeUnknown = "???"

var codeStrings = [numCodes]string{
	CodeOK:             "OK",
	CodeFull:           "FULL",
	CodeInvalid:        "INVALID",
	CodeOutOfMemory:    "NOMEM",
	CodeEmpty:          "EMPTY",
	CodeInternal:       "INTERNAL",
	CodeBufferOverflow: "BUFOVERFLOW",
	CodeMaxRefcount:    "MAXREFCOUNT",
}

// Valid reports whether c is a known code.
func (c Code) Valid() bool {
	return c < numCodes
}

// IsError reports whether c represents a failure.
func (c Code) IsError() bool {
	return c != CodeOK
}

// String returns the short debug name for c, or "???" for unknown codes.
func (c Code) String() string {
	if !c.Valid() {
		return codeUnknown
	}
	return codeStrings[c]
}

// CodeOf maps an error from this package to its Code. A nil error maps to
// CodeOK; errors that carry no known sentinel map to CodeInternal.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrFull):
		return CodeFull
	case errors.Is(err, ErrInvalid):
		return CodeInvalid
	case errors.Is(err, ErrOutOfMemory):
		return CodeOutOfMemory
	case errors.Is(err, ErrEmpty):
		return CodeEmpty
	case errors.Is(err, ErrBufferOverflow):
		return CodeBufferOverflow
	case errors.Is(err, ErrMaxRefcount):
		return CodeMaxRefcount
	default:
		return CodeInternal
	}
}
