package config

import "errors"

var (
	// ErrInvalidConfig indicates the rewrite configuration cannot be used for a run.
	ErrInvalidConfig = errors.New("invalid rewrite configuration")
	// ErrInvalidMapping indicates a prefix mapping flag could not be parsed.
	ErrInvalidMapping = errors.New("invalid prefix mapping")
)
