// Package credentials keeps the uploaded Google service-account key on disk.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	ErrNotFound    = errors.New("credentials file not found")
	ErrInvalidJSON = errors.New("credentials file is not valid JSON")
)

type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Exists() bool {
	ok, err := afero.Exists(s.fs, s.path)
	return err == nil && ok
}

// Save writes r to a temporary file next to the destination and renames it
// into place, so a failed upload never leaves a truncated key behind.
func (s *Store) Save(r io.Reader) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".upload-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := s.fs.Chmod(tmpName, 0o600); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to set credentials permissions: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to move credentials into place: %w", err)
	}
	return nil
}

// Read returns the raw key file contents.
func (s *Store) Read() ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	return data, nil
}

// Data returns the parsed key file.
func (s *Store) Data() (map[string]interface{}, error) {
	raw, err := s.Read()
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return data, nil
}
