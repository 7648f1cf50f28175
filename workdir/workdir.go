// Package workdir resolves the process working directory as text.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// PathEncodingError is returned when an OS path is not valid UTF-8 text.
type PathEncodingError struct {
	Path string
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("path is not valid UTF-8: %q", e.Path)
}

var getwd = os.Getwd

// Get returns the absolute working directory.
func Get() (string, error) {
	dir, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if !filepath.IsAbs(dir) {
		dir, err = filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to make working directory absolute: %w", err)
		}
	}
	return Text(dir)
}

// Text returns p unchanged if it is valid UTF-8.
func Text(p string) (string, error) {
	if !utf8.ValidString(p) {
		return "", &PathEncodingError{Path: p}
	}
	return p, nil
}
