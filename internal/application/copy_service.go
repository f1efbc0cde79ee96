// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

// Package application wires the permission transfer domain to its ports.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/janderssonse/cpmod/internal/domain"
)

// CopyOptions controls how CopyService treats each file.
type CopyOptions struct {
	Recursive bool
	DryRun    bool
}

// CopyService applies a transfer spec to files through a ModeStore.
type CopyService struct {
	store   domain.ModeStore
	options CopyOptions
	now     func() time.Time
}

// NewCopyService creates a new copy service.
func NewCopyService(store domain.ModeStore, options CopyOptions) *CopyService {
	return &CopyService{
		store:   store,
		options: options,
		now:     time.Now,
	}
}

// CopyFile reads the mode of path, applies spec and writes the result back.
//
// The write is skipped when the mode does not change or in dry-run mode. A
// returned error is also recorded in the result, so callers that only need
// the report can ignore it.
func (s *CopyService) CopyFile(path string, spec *domain.TransferSpec) (*domain.FileResult, error) {
	result := &domain.FileResult{
		Path:   path,
		DryRun: s.options.DryRun,
	}

	oldMode, err := s.store.GetMode(path)
	if err != nil {
		result.Error = domain.FormatFileError(path, err)

		return result, err
	}

	newMode := spec.Apply(oldMode)

	result.Directory = oldMode.IsDir()
	result.OldMode = domain.FormatOctal(oldMode)
	result.NewMode = domain.FormatOctal(newMode)
	result.OldPerms = domain.Render(oldMode)
	result.NewPerms = domain.Render(newMode)
	result.Changed = newMode != oldMode

	if result.Changed && !s.options.DryRun {
		if err := s.store.SetMode(path, newMode); err != nil {
			err = fmt.Errorf("%w: %w", domain.ErrSetModeFailed, err)
			result.Error = domain.FormatFileError(path, err)

			return result, err
		}
	}

	if s.options.Recursive && result.Directory {
		result.Warning = fmt.Sprintf("%v, contents of '%s' left unchanged", domain.ErrRecursionUnsupported, path)
	}

	return result, nil
}

// Run processes paths in order. A failure on one path is recorded and the
// next path is processed; only a cancelled context stops the run early.
func (s *CopyService) Run(ctx context.Context, spec *domain.TransferSpec, paths []string, report func(*domain.FileResult)) (*domain.CopyResult, error) {
	start := s.now()

	result := &domain.CopyResult{
		Spec:      spec.String(),
		Recursive: s.options.Recursive,
		DryRun:    s.options.DryRun,
		Files:     make([]*domain.FileResult, 0, len(paths)),
		Timestamp: start,
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result.Duration = s.now().Sub(start)

			return result, fmt.Errorf("run interrupted before %s: %w", path, err)
		}

		fileResult, _ := s.CopyFile(path, spec)
		result.Add(fileResult)

		if report != nil {
			report(fileResult)
		}
	}

	result.Duration = s.now().Sub(start)

	return result, nil
}
