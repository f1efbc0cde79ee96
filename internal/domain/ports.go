// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
)

// Common port errors.
var (
	ErrMockFileNotFound = errors.New("mock file not found")
)

// ModeStore defines the interface for reading and writing file modes.
// Implemented by the platform adapter (stat/chmod) and by an in-memory mock.
type ModeStore interface {
	// GetMode returns the raw st_mode of path, following symlinks.
	GetMode(path string) (Mode, error)

	// SetMode writes the permission bits of mode to path.
	SetMode(path string, mode Mode) error
}
