package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyPath is returned when the Fetcher is constructed without a path.
var ErrEmptyPath = errors.New("file path must not be empty")

// Fetcher implements config.DataFetcher for a configuration file on disk.
// The file is read exactly once, at construction time.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that reads the file at fpath.
// Keeping the read behind a constructor lets an Fx container decide when the I/O happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return Read(fpath)
	}
}

// Read stats and reads the file at fpath, returning a Fetcher holding its contents.
func Read(fpath string) (*Fetcher, error) {
	if fpath == "" {
		return nil, ErrEmptyPath
	}

	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{
		filepath: cleanPath,
		data:     data,
	}, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the bytes read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
