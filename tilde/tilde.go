package tilde

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/leighmcculloch/spwd/workdir"
)

// ErrNoHomeDirectory is returned when the user's home directory cannot be
// determined.
var ErrNoHomeDirectory = errors.New("can't find the home directory")

// homeDir returns the home directory xdg resolved. xdg falls back to the
// filesystem root when $HOME is unset, which is reported as no home.
var homeDir = func() (string, error) {
	home := xdg.Home
	if home == "" {
		return "", ErrNoHomeDirectory
	}
	if os.Getenv("HOME") == "" && home == string(filepath.Separator) {
		return "", ErrNoHomeDirectory
	}
	return home, nil
}

// Home returns the user's home directory
func Home() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	home, err = workdir.Text(home)
	if err != nil {
		return "", fmt.Errorf("invalid home directory: %w", err)
	}
	return home, nil
}
