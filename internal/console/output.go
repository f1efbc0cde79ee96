// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes diagnostics (errors, warnings, progress) to stderr.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"

	errorPrefix   = "[Error]"
	warningPrefix = "[Warning]"
)

// OutputState holds diagnostic output configuration.
type OutputState struct {
	Verbose bool
	NoColor bool

	writer io.Writer
}

// NewOutputState creates an OutputState writing to w. A nil w means os.Stderr.
func NewOutputState(w io.Writer) *OutputState {
	if w == nil {
		w = os.Stderr
	}

	return &OutputState{writer: w}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, noColor bool) {
	o.Verbose = verbose
	o.NoColor = noColor
}

// Writer returns the destination of diagnostics.
func (o *OutputState) Writer() io.Writer {
	if o.writer == nil {
		return os.Stderr
	}

	return o.writer
}

// IsTTY checks if diagnostics are going to a terminal (not piped/redirected).
func (o *OutputState) IsTTY() bool {
	f, ok := o.Writer().(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}

// colorEnabled applies no-color.org conventions on top of the --no-color flag.
func (o *OutputState) colorEnabled() bool {
	if o.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	return o.IsTTY()
}

func (o *OutputState) highlight(code, text string) string {
	if !o.colorEnabled() {
		return text
	}

	return ansiBold + code + text + ansiReset
}

// Progressf writes progress messages (only if verbose).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose {
		_, _ = fmt.Fprintf(o.Writer(), format+"\n", args...)
	}
}

// Warningf writes warning messages (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.Writer(), o.highlight(ansiYellow, warningPrefix)+" "+format+"\n", args...)
}

// Errorf writes error messages (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.Writer(), o.highlight(ansiRed, errorPrefix)+" "+format+"\n", args...)
}

// Println writes text as-is, e.g. usage.
func (o *OutputState) Println(text string) {
	_, _ = fmt.Fprintln(o.Writer(), text)
}
