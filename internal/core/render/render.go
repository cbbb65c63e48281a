// Package render substitutes the fixed placeholder set into stub text.
// Tokens are matched literally; any other {{...}} text passes through unchanged.
package render

import (
	"strings"

	"github.com/example/modgen/internal/core/naming"
)

// Placeholder tokens recognized inside stubs.
const (
	TokenStudly      = "{{studly}}"
	TokenLower       = "{{lower}}"
	TokenPlural      = "{{plural}}"
	TokenPluralLower = "{{pluralLower}}"
)

// Placeholders returns the token/value pairs for name in replacer order.
func Placeholders(name naming.Name) []string {
	return []string{
		TokenStudly, name.Studly,
		TokenLower, name.Lower,
		TokenPlural, name.Plural,
		TokenPluralLower, name.PluralLower,
	}
}

// Render replaces every occurrence of the four tokens in tmpl.
func Render(tmpl string, name naming.Name) string {
	return strings.NewReplacer(Placeholders(name)...).Replace(tmpl)
}
