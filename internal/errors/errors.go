package errors

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeListLoad  ErrorType = "list_load"
	ErrorTypeAlgorithm ErrorType = "algorithm"
)

// StemError is returned by every layer of the stemmer. Type tells the
// caller whether the failure is fatal to a build (config, list_load) or
// isolated to one word (algorithm).
type StemError struct {
	Type       ErrorType
	Op         string
	Path       string
	Word       string
	Underlying error
}

func NewConfigError(op string, err error) *StemError {
	return &StemError{Type: ErrorTypeConfig, Op: op, Underlying: err}
}

func NewListLoadError(path string, err error) *StemError {
	return &StemError{Type: ErrorTypeListLoad, Op: "load", Path: path, Underlying: err}
}

func NewAlgorithmError(algorithm, word string, err error) *StemError {
	return &StemError{Type: ErrorTypeAlgorithm, Op: algorithm, Word: word, Underlying: err}
}

func (e *StemError) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("%s %s failed for %s: %v", e.Type, e.Op, e.Path, e.Underlying)
	case e.Word != "":
		return fmt.Sprintf("%s %s failed for word %q: %v", e.Type, e.Op, e.Word, e.Underlying)
	default:
		return fmt.Sprintf("%s %s failed: %v", e.Type, e.Op, e.Underlying)
	}
}

func (e *StemError) Unwrap() error {
	return e.Underlying
}

func IsConfigError(err error) bool {
	return isType(err, ErrorTypeConfig)
}

func IsListLoadError(err error) bool {
	return isType(err, ErrorTypeListLoad)
}

func IsAlgorithmFailure(err error) bool {
	return isType(err, ErrorTypeAlgorithm)
}

func isType(err error, t ErrorType) bool {
	var se *StemError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}
