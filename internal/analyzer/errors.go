package analyzer

import (
	"errors"
	"fmt"
)

var (
	ErrIO         = errors.New("document cannot be opened")
	ErrProcessing = errors.New("analysis failed")
)

type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioError(path string, err error) error {
	return &Error{Kind: ErrIO, Path: path, Err: err}
}

func processingError(path string, err error) error {
	return &Error{Kind: ErrProcessing, Path: path, Err: err}
}
