package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Identifier is the display pair a data provider reports: a type tag and the
// human-facing label.
type Identifier struct {
	Type  string
	Label string
}

// NormalizeLabel trims surrounding space and applies NFC so that visually
// equal labels compare equal.
func NormalizeLabel(label string) string {
	return norm.NFC.String(strings.TrimSpace(label))
}
