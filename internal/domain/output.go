// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "time"

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data interface{}) error

	// Error outputs an error message
	Error(message string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// FileResult is the outcome of copying permission bits on a single file.
type FileResult struct {
	Path      string `json:"path"`
	OldMode   string `json:"old_mode,omitempty"`
	NewMode   string `json:"new_mode,omitempty"`
	OldPerms  string `json:"old_perms,omitempty"`
	NewPerms  string `json:"new_perms,omitempty"`
	Changed   bool   `json:"changed"`
	DryRun    bool   `json:"dry_run,omitempty"`
	Warning   string `json:"warning,omitempty"`
	Error     string `json:"error,omitempty"`
	Directory bool   `json:"directory,omitempty"`
}

// Failed reports whether the file could not be read or written.
func (r *FileResult) Failed() bool {
	return r.Error != ""
}

// Line formats the result as "FILENAME [ OLDPERMS ] -> [ NEWPERMS ]".
func (r *FileResult) Line() string {
	return r.Path + " [ " + r.OldPerms + " ] -> [ " + r.NewPerms + " ]"
}

// CopyResult represents the outcome of a whole run.
type CopyResult struct {
	Spec      string        `json:"spec"`
	Recursive bool          `json:"recursive,omitempty"`
	DryRun    bool          `json:"dry_run,omitempty"`
	Files     []*FileResult `json:"files"`
	Changed   int           `json:"changed"`
	Unchanged int           `json:"unchanged"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// Add records a file result and updates the counters.
func (c *CopyResult) Add(r *FileResult) {
	c.Files = append(c.Files, r)

	switch {
	case r.Failed():
		c.Failed++
	case r.Changed:
		c.Changed++
	default:
		c.Unchanged++
	}
}
