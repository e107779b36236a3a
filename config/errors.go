package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat matches every *UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// ErrParse matches every *ParseError.
var ErrParse = errors.New("configuration parse error")

// ErrIO matches every *IOError.
var ErrIO = errors.New("configuration read error")

// ErrPathNotFound is returned by Provider when the requested path is absent.
var ErrPathNotFound = errors.New("path not found")

// UnsupportedFormatError reports a file whose extension selects no parser.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Extension == "" {
		return fmt.Sprintf("config: %s: %q has no extension", ErrUnsupportedFormat, e.Path)
	}

	return fmt.Sprintf("config: %s %q: %q", ErrUnsupportedFormat, e.Extension, e.Path)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ParseError reports content that could not be turned into a mapping.
type ParseError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("config: %s parse error in %q: %v", e.Format, e.Path, e.Err)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// IOError reports a configuration file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("config: reading %q: %v", e.Path, e.Err)
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
