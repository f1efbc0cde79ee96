// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package application_test

import (
	"context"
	"io/fs"
	"syscall"
	"testing"

	"github.com/janderssonse/cpmod/internal/adapters/platform"
	"github.com/janderssonse/cpmod/internal/application"
	"github.com/janderssonse/cpmod/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockModeStore for testing.
type MockModeStore struct {
	mock.Mock
}

func (m *MockModeStore) GetMode(path string) (domain.Mode, error) {
	args := m.Called(path)

	mode, ok := args.Get(0).(domain.Mode)
	if !ok {
		return 0, args.Error(1)
	}

	return mode, args.Error(1)
}

func (m *MockModeStore) SetMode(path string, mode domain.Mode) error {
	args := m.Called(path, mode)

	return args.Error(0)
}

func mustParse(t *testing.T, spec string) *domain.TransferSpec {
	t.Helper()

	parsed, err := domain.ParseSpec(spec)
	require.NoError(t, err)

	return parsed
}

func TestCopyService_CopyFile(t *testing.T) {
	t.Parallel()

	store := new(MockModeStore)
	store.On("GetMode", "notes.txt").Return(domain.Mode(0o100640), nil)
	store.On("SetMode", "notes.txt", domain.Mode(0o100646)).Return(nil)

	service := application.NewCopyService(store, application.CopyOptions{})

	result, err := service.CopyFile("notes.txt", mustParse(t, "u-o"))
	require.NoError(t, err)

	assert.Equal(t, "notes.txt [ -rw-r----- ] -> [ -rw-r--rw- ]", result.Line())
	assert.Equal(t, "0640", result.OldMode)
	assert.Equal(t, "0646", result.NewMode)
	assert.True(t, result.Changed)
	assert.False(t, result.Failed())
	store.AssertExpectations(t)
}

func TestCopyService_UnchangedModeIsNotWritten(t *testing.T) {
	t.Parallel()

	store := new(MockModeStore)
	store.On("GetMode", "same.txt").Return(domain.Mode(0o644), nil)

	service := application.NewCopyService(store, application.CopyOptions{})

	result, err := service.CopyFile("same.txt", mustParse(t, "g-o"))
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, result.OldPerms, result.NewPerms)
	store.AssertNotCalled(t, "SetMode", mock.Anything, mock.Anything)
}

func TestCopyService_DryRunNeverWrites(t *testing.T) {
	t.Parallel()

	store := new(MockModeStore)
	store.On("GetMode", "a").Return(domain.Mode(0o700), nil)

	service := application.NewCopyService(store, application.CopyOptions{DryRun: true})

	result, err := service.CopyFile("a", mustParse(t, "u-go"))
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.True(t, result.DryRun)
	assert.Equal(t, "-rwxrwxrwx", result.NewPerms)
	store.AssertNotCalled(t, "SetMode", mock.Anything, mock.Anything)
}

func TestCopyService_GetModeFailure(t *testing.T) {
	t.Parallel()

	store := new(MockModeStore)
	store.On("GetMode", "missing").Return(nil, &fs.PathError{Op: "stat", Path: "missing", Err: syscall.ENOENT})

	service := application.NewCopyService(store, application.CopyOptions{})

	result, err := service.CopyFile("missing", mustParse(t, "u-g"))
	require.Error(t, err)
	assert.True(t, result.Failed())
	assert.Equal(t, "no such file or directory (missing)", result.Error)
	assert.Empty(t, result.OldPerms)
}

func TestCopyService_SetModeFailure(t *testing.T) {
	t.Parallel()

	store := new(MockModeStore)
	store.On("GetMode", "locked").Return(domain.Mode(0o600), nil)
	store.On("SetMode", "locked", domain.Mode(0o660)).
		Return(&fs.PathError{Op: "chmod", Path: "locked", Err: syscall.EPERM})

	service := application.NewCopyService(store, application.CopyOptions{})

	result, err := service.CopyFile("locked", mustParse(t, "u-g"))
	require.ErrorIs(t, err, domain.ErrSetModeFailed)
	assert.Equal(t, "could not change file mode on 'locked': operation not permitted", result.Error)
}

func TestCopyService_RecursiveDirectoryWarns(t *testing.T) {
	t.Parallel()

	store := platform.NewMockModeStore(false)
	store.SetMockMode("dir", domain.ModeDir|0o750)
	store.SetMockMode("file", 0o750)

	service := application.NewCopyService(store, application.CopyOptions{Recursive: true})
	spec := mustParse(t, "g-o")

	dirResult, err := service.CopyFile("dir", spec)
	require.NoError(t, err)
	assert.True(t, dirResult.Directory)
	assert.Contains(t, dirResult.Warning, domain.ErrRecursionUnsupported.Error())
	assert.Equal(t, "drwxr-x---", dirResult.OldPerms)
	assert.Equal(t, "drwxr-xr-x", dirResult.NewPerms)

	mode, _ := store.Mode("dir")
	assert.Equal(t, domain.ModeDir|0o755, mode, "the directory itself is still changed")

	fileResult, err := service.CopyFile("file", spec)
	require.NoError(t, err)
	assert.Empty(t, fileResult.Warning)
}

func TestCopyService_DirectoryWithoutRecursiveHasNoWarning(t *testing.T) {
	t.Parallel()

	store := platform.NewMockModeStore(false)
	store.SetMockMode("dir", domain.ModeDir|0o700)

	service := application.NewCopyService(store, application.CopyOptions{})

	result, err := service.CopyFile("dir", mustParse(t, "u-g"))
	require.NoError(t, err)
	assert.Empty(t, result.Warning)
}

func TestCopyService_RunContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	store := platform.NewMockModeStore(false)
	store.SetMockMode("first", 0o700)
	store.SetMockMode("third", 0o640)
	store.FailSetMode("fourth", fs.ErrPermission)
	store.SetMockMode("fourth", 0o700)

	service := application.NewCopyService(store, application.CopyOptions{})

	var reported []string

	result, err := service.Run(context.Background(), mustParse(t, "u-g"),
		[]string{"first", "second", "third", "fourth"},
		func(r *domain.FileResult) { reported = append(reported, r.Path) })
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, reported)
	assert.Equal(t, "u-g", result.Spec)
	assert.Len(t, result.Files, 4)
	assert.Equal(t, 2, result.Changed)
	assert.Equal(t, 0, result.Unchanged)
	assert.Equal(t, 2, result.Failed)
	assert.True(t, result.Files[1].Failed())
	assert.True(t, result.Files[3].Failed())

	mode, _ := store.Mode("third")
	assert.Equal(t, domain.Mode(0o660), mode)
}

func TestCopyService_RunStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	store := platform.NewMockModeStore(false)
	store.SetMockMode("a", 0o700)

	service := application.NewCopyService(store, application.CopyOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.Run(ctx, mustParse(t, "u-g"), []string{"a"}, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Files)
	assert.Empty(t, store.SetCalls())
}
