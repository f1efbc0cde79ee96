// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock is a per-user advisory lock held while a run writes modes.
type RunLock struct {
	lock *flock.Flock
}

// NewRunLock creates a run lock backed by the file at path.
func NewRunLock(path string) *RunLock {
	return &RunLock{lock: flock.New(path)}
}

// TryAcquire takes the lock without waiting. It returns false when another
// run holds it.
func (l *RunLock) TryAcquire() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.lock.Path()), 0o700); err != nil {
		return false, fmt.Errorf("failed to create lock directory: %w", err)
	}

	locked, err := l.lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to lock %s: %w", l.lock.Path(), err)
	}

	return locked, nil
}

// Release drops the lock if it is held.
func (l *RunLock) Release() error {
	return l.lock.Unlock()
}
