// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Render formats mode the way ls -l does: a type character followed by nine
// rwx characters, with setuid, setgid and sticky shown as s/S, s/S and t/T
// in the execute slots.
func Render(mode Mode) string {
	perms := [10]byte{'-', '-', '-', '-', '-', '-', '-', '-', '-', '-'}

	if mode.IsDir() {
		perms[0] = 'd'
	}

	for i, subject := range []Subject{User, Group, Other} {
		bits := subject.extract(mode)
		offset := 1 + i*3

		if bits&0o4 != 0 {
			perms[offset] = 'r'
		}

		if bits&0o2 != 0 {
			perms[offset+1] = 'w'
		}

		if bits&0o1 != 0 {
			perms[offset+2] = 'x'
		}
	}

	overlay(&perms, 3, mode&ModeSetuid != 0, 's', 'S')
	overlay(&perms, 6, mode&ModeSetgid != 0, 's', 'S')
	overlay(&perms, 9, mode&ModeSticky != 0, 't', 'T')

	return string(perms[:])
}

func overlay(perms *[10]byte, pos int, set bool, withExec, withoutExec byte) {
	if !set {
		return
	}

	if perms[pos] == 'x' {
		perms[pos] = withExec
	} else {
		perms[pos] = withoutExec
	}
}
