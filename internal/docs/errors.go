package docs

import "errors"

var (
	// ErrWalkFailed indicates the documentation tree could not be fully walked.
	ErrWalkFailed = errors.New("failed to walk documentation directory")
	// ErrInvalidRelativePath indicates a discovered file falls outside the scanned root.
	ErrInvalidRelativePath = errors.New("failed to compute relative path")
)
