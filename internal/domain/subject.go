// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Subject is one of the three permission classes of a Unix mode.
type Subject int

// Subject classes.
const (
	User Subject = iota
	Group
	Other
)

// subjectField pairs the mask and shift of a subject class. The two are only
// ever used together through the methods below.
type subjectField struct {
	letter byte
	name   string
	mask   Mode
	shift  uint
}

var subjectFields = [...]subjectField{ //nolint:gochecknoglobals
	User:  {letter: 'u', name: "user", mask: 0o700, shift: 6},
	Group: {letter: 'g', name: "group", mask: 0o070, shift: 3},
	Other: {letter: 'o', name: "other", mask: 0o007, shift: 0},
}

// SubjectFromLetter resolves u, g or o to a subject class.
func SubjectFromLetter(letter rune) (Subject, bool) {
	for s, field := range subjectFields {
		if rune(field.letter) == letter {
			return Subject(s), true
		}
	}

	return 0, false
}

// Valid reports whether s is one of User, Group or Other.
func (s Subject) Valid() bool {
	return s >= User && s <= Other
}

// Letter returns the single letter used for s in transfer specs.
func (s Subject) Letter() byte {
	return s.field().letter
}

// String returns the lower-case class name.
func (s Subject) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return s.field().name
}

func (s Subject) field() subjectField {
	return subjectFields[s]
}

// extract returns the class's three rwx bits moved down to bit position 0.
func (s Subject) extract(m Mode) Mode {
	f := s.field()

	return (m & f.mask) >> f.shift
}

// clear zeroes the class's three rwx bits.
func (s Subject) clear(m Mode) Mode {
	return m &^ s.field().mask
}

// insert ORs three low-order rwx bits into the class's position.
func (s Subject) insert(m, bits Mode) Mode {
	f := s.field()

	return m | ((bits << f.shift) & f.mask)
}
