package rewrite

import "errors"

var (
	// ErrRelativePath indicates a link target could not be expressed relative to its document.
	ErrRelativePath = errors.New("failed to compute relative link path")
	// ErrReadFailed indicates a document could not be read.
	ErrReadFailed = errors.New("failed to read document")
	// ErrWriteFailed indicates a rewritten document could not be written back.
	ErrWriteFailed = errors.New("failed to write document")
)
