// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common domain errors.
var (
	ErrRecursionUnsupported = errors.New("recursion is not supported")
	ErrSetModeFailed        = errors.New("could not change file mode")
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Reason strips the operation and path from filesystem errors so that only
// the system's explanation remains, e.g. "no such file or directory".
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}

	return err.Error()
}

// FormatFileError renders a per-file failure the way it is reported on stderr.
func FormatFileError(path string, err error) string {
	if errors.Is(err, ErrSetModeFailed) {
		return fmt.Sprintf("could not change file mode on '%s': %s", path, Reason(err))
	}

	return fmt.Sprintf("%s (%s)", Reason(err), path)
}
