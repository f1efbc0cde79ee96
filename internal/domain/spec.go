// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	specSeparator    = "-"
	specAltSeparator = "+"
)

// Spec parsing errors.
var (
	ErrMalformedSpec  = errors.New("malformed transfer spec")
	ErrUnknownSubject = errors.New("unknown subject")
)

// ParseError reports why a transfer spec was rejected and which token caused it.
type ParseError struct {
	Err   error
	Token string
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMalformedSpec) {
		return fmt.Sprintf("%v '%s': expected SOURCE-DESTINATIONS, e.g. u-g", e.Err, e.Token)
	}

	return fmt.Sprintf("%v '%s': must be one of u, g or o", e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TransferSpec names the subject whose bits are read and the ordered list of
// subjects they are written to. Duplicates in Destinations are kept.
type TransferSpec struct {
	Source       Subject
	Destinations []Subject
}

// ParseSpec parses specs such as "u-g" or "g+uo".
//
// '+' is accepted as an alias of '-'. Only the lower-case letters u, g and o
// name subjects. Segments after the second separator are ignored, and an
// empty destination segment ("u-") parses to a spec without destinations.
func ParseSpec(spec string) (*TransferSpec, error) {
	normalized := strings.ReplaceAll(spec, specAltSeparator, specSeparator)

	segments := strings.Split(normalized, specSeparator)
	if len(segments) < 2 {
		return nil, &ParseError{Err: ErrMalformedSpec, Token: spec}
	}

	source, ok := parseSource(segments[0])
	if !ok {
		return nil, &ParseError{Err: ErrUnknownSubject, Token: segments[0]}
	}

	destinations := make([]Subject, 0, len(segments[1]))

	for _, letter := range segments[1] {
		dest, ok := SubjectFromLetter(letter)
		if !ok {
			return nil, &ParseError{Err: ErrUnknownSubject, Token: string(letter)}
		}

		destinations = append(destinations, dest)
	}

	return &TransferSpec{
		Source:       source,
		Destinations: destinations,
	}, nil
}

func parseSource(segment string) (Subject, bool) {
	runes := []rune(segment)
	if len(runes) != 1 {
		return 0, false
	}

	return SubjectFromLetter(runes[0])
}

// String renders the spec in canonical form, e.g. "g-uo".
func (t *TransferSpec) String() string {
	var b strings.Builder

	b.WriteByte(t.Source.Letter())
	b.WriteString(specSeparator)

	for _, dest := range t.Destinations {
		b.WriteByte(dest.Letter())
	}

	return b.String()
}

// Apply runs the transfer against mode. See Apply.
func (t *TransferSpec) Apply(mode Mode) Mode {
	return Apply(mode, t.Source, t.Destinations)
}
