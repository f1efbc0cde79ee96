// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides filesystem adapters for reading and writing file modes.
package platform

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/janderssonse/cpmod/internal/domain"
	"golang.org/x/sys/unix"
)

var (
	_ domain.ModeStore = (*ModeStore)(nil)
	_ domain.ModeStore = (*MockModeStore)(nil)
)

// ModeStore implements the ModeStore port with stat(2) and chmod(2).
type ModeStore struct {
	verbose bool
	log     io.Writer
}

// NewModeStore creates a new mode store.
func NewModeStore(verbose bool) *ModeStore {
	return &ModeStore{
		verbose: verbose,
		log:     os.Stderr,
	}
}

// GetMode returns the raw st_mode of path. Symlinks are followed.
func (s *ModeStore) GetMode(path string) (domain.Mode, error) {
	if s.verbose {
		_, _ = fmt.Fprintf(s.log, "Reading mode: %s\n", path)
	}

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	return domain.Mode(st.Mode), nil
}

// SetMode writes the permission bits of mode to path; file type bits are dropped.
func (s *ModeStore) SetMode(path string, mode domain.Mode) error {
	if s.verbose {
		_, _ = fmt.Fprintf(s.log, "Changing mode: %s -> %s\n", path, domain.FormatOctal(mode))
	}

	if err := unix.Chmod(path, uint32(mode.Permissions())); err != nil {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}

	return nil
}

// MockModeStore implements the ModeStore port for testing.
type MockModeStore struct {
	modes     map[string]domain.Mode // path -> mode
	setErrors map[string]error
	setCalls  []string
	verbose   bool
	log       io.Writer
}

// NewMockModeStore creates a new mock mode store for testing.
func NewMockModeStore(verbose bool) *MockModeStore {
	return NewMockModeStoreWithWriter(verbose, os.Stderr)
}

// NewMockModeStoreWithWriter creates a mock mode store that traces to log.
func NewMockModeStoreWithWriter(verbose bool, log io.Writer) *MockModeStore {
	return &MockModeStore{
		modes:     make(map[string]domain.Mode),
		setErrors: make(map[string]error),
		verbose:   verbose,
		log:       log,
	}
}

// SetMockMode sets the mode of a mock file.
func (s *MockModeStore) SetMockMode(path string, mode domain.Mode) {
	s.modes[path] = mode
}

// FailSetMode makes SetMode on path return err.
func (s *MockModeStore) FailSetMode(path string, err error) {
	s.setErrors[path] = err
}

// Mode returns the current mock mode of path.
func (s *MockModeStore) Mode(path string) (domain.Mode, bool) {
	mode, exists := s.modes[path]

	return mode, exists
}

// SetCalls returns the paths passed to SetMode, in call order.
func (s *MockModeStore) SetCalls() []string {
	return s.setCalls
}

// GetMode reads a mock mode.
func (s *MockModeStore) GetMode(path string) (domain.Mode, error) {
	if s.verbose {
		_, _ = fmt.Fprintf(s.log, "MOCK: Reading mode %s\n", path)
	}

	mode, exists := s.modes[path]
	if !exists {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: domain.ErrMockFileNotFound}
	}

	return mode, nil
}

// SetMode replaces the permission bits of a mock file, keeping its type bits.
func (s *MockModeStore) SetMode(path string, mode domain.Mode) error {
	if s.verbose {
		_, _ = fmt.Fprintf(s.log, "MOCK: Changing mode %s -> %s\n", path, domain.FormatOctal(mode))
	}

	s.setCalls = append(s.setCalls, path)

	if err, fails := s.setErrors[path]; fails {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}

	current, exists := s.modes[path]
	if !exists {
		return &fs.PathError{Op: "chmod", Path: path, Err: domain.ErrMockFileNotFound}
	}

	s.modes[path] = current&^domain.ModeSpecial | mode.Permissions()

	return nil
}
