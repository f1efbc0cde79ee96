// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Apply copies the source class's rwx bits into each destination class, in
// order.
//
// Every step reads the source field from the working mode, not from current,
// so a step observes what earlier steps wrote. With source u and
// destinations "ug" the first step clears u and copies the now empty u field
// into itself, and the second step copies that empty field into g.
// Setuid, setgid, sticky and file type bits are never touched.
func Apply(current Mode, source Subject, destinations []Subject) Mode {
	working := current

	for _, dest := range destinations {
		working = dest.clear(working)
		working = dest.insert(working, source.extract(working))
	}

	return working
}
