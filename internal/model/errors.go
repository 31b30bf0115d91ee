package model

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by parse errors for absent required keys.
var ErrMissingField = errors.New("missing required field")

// ParseError reports text that could not be decoded into a SuiteConfig.
type ParseError struct {
	// Text is the document that failed to parse.
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse suite config: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingField(key string) error {
	return fmt.Errorf("%w %q", ErrMissingField, key)
}
