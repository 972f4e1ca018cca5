// Package fileio is the filesystem boundary used by the CLI and tests.
// The nibble packages never import it.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var ErrEmptyPath = errors.New("fileio: empty path")

// FS reads and writes whole files on one afero filesystem.
type FS struct {
	fs afero.Fs
}

// NewFS wraps fs. A nil fs selects the OS filesystem.
func NewFS(fs afero.Fs) FS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return FS{fs: fs}
}

// OS returns an FS over the host filesystem.
func OS() FS {
	return NewFS(nil)
}

func (f FS) ReadFile(path string) ([]byte, error) {
	p, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	out, err := afero.ReadFile(f.fs, p)
	if err != nil {
		return nil, fmt.Errorf("fileio: read %s: %w", p, err)
	}
	return out, nil
}

// WriteFile creates or truncates path, creating parent directories.
func (f FS) WriteFile(path string, data []byte) error {
	p, err := cleanPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("fileio: mkdir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(f.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("fileio: write %s: %w", p, err)
	}
	return nil
}

func (f FS) Exists(path string) bool {
	p, err := cleanPath(path)
	if err != nil {
		return false
	}
	ok, err := afero.Exists(f.fs, p)
	return err == nil && ok
}

// IsDir reports false for missing paths.
func (f FS) IsDir(path string) bool {
	p, err := cleanPath(path)
	if err != nil {
		return false
	}
	ok, err := afero.IsDir(f.fs, p)
	return err == nil && ok
}

func cleanPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}
	return filepath.Clean(path), nil
}

func ReadFile(path string) ([]byte, error)     { return OS().ReadFile(path) }
func WriteFile(path string, data []byte) error { return OS().WriteFile(path, data) }
func Exists(path string) bool                  { return OS().Exists(path) }
func IsDir(path string) bool                   { return OS().IsDir(path) }

// IsNotExist reports whether err comes from a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
