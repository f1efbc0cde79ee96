// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "fmt"

// Mode holds raw st_mode bits as reported by stat(2), file type included.
type Mode uint32

// Permission and file type bits, in the platform's st_mode encoding.
const (
	ModeSetuid Mode = 0o4000
	ModeSetgid Mode = 0o2000
	ModeSticky Mode = 0o1000

	// ModePerm covers the nine rwx bits of user, group and other.
	ModePerm Mode = 0o777

	// ModeSpecial covers ModePerm plus setuid, setgid and sticky.
	ModeSpecial Mode = 0o7777

	ModeTypeMask Mode = 0o170000
	ModeDir      Mode = 0o040000
)

// IsDir reports whether the file type bits describe a directory.
func (m Mode) IsDir() bool {
	return m&ModeTypeMask == ModeDir
}

// Permissions strips the file type bits.
func (m Mode) Permissions() Mode {
	return m & ModeSpecial
}

// FormatOctal renders the permission bits as a four digit octal string, e.g. "0644".
func FormatOctal(m Mode) string {
	return fmt.Sprintf("%04o", uint32(m.Permissions()))
}
