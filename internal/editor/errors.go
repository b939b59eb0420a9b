package editor

import "errors"

var (
	// ErrRootEditRejected is returned for edits addressed at the document root.
	ErrRootEditRejected = errors.New("the root node cannot be edited")
	// ErrMalformedDocument is returned when the document text is not valid JSON.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrInvalidNumber is returned when a number draft does not hold a finite number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrUnsupportedType is returned for drafts typed as anything but a scalar kind.
	ErrUnsupportedType = errors.New("unsupported value type")
)
