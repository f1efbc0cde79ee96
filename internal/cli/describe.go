// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"strings"

	"github.com/janderssonse/cpmod/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// describeSpec renders a spec for progress output, e.g.
// "User permissions to Group, Other (u-go)".
func describeSpec(spec *domain.TransferSpec) string {
	title := cases.Title(language.Und)

	if len(spec.Destinations) == 0 {
		return title.String(spec.Source.String()) + " permissions nowhere (" + spec.String() + ")"
	}

	names := make([]string, 0, len(spec.Destinations))
	for _, dest := range spec.Destinations {
		names = append(names, title.String(dest.String()))
	}

	return title.String(spec.Source.String()) + " permissions to " + strings.Join(names, ", ") + " (" + spec.String() + ")"
}
