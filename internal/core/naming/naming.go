// Package naming derives the casing and pluralization variants of an entity name.
// Everything here is pure: the same raw name always yields the same Name.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// ErrInvalidName is returned when a raw entity name is empty or malformed.
var ErrInvalidName = errors.New("naming: invalid name")

// Name is the bundle of name variants used by paths and stub content.
type Name struct {
	Raw         string // as typed: "orderItem"
	Studly      string // first letter upper: "OrderItem"
	Lower       string // all lower: "orderitem"
	Plural      string // PascalCase plural: "OrderItems"
	PluralLower string // lower plural: "orderitems"
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidName, r.Reason)
}

var identifierRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// CanDerive evaluates whether a raw name can be turned into a Name.
// Rules:
// - Name must not be empty
// - Name must be a single identifier (letter first, then letters, digits, underscores)
func CanDerive(raw string) GuardResult {
	if raw == "" {
		return GuardResult{Allowed: false, Reason: "name cannot be empty"}
	}
	if !identifierRe.MatchString(raw) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q is not a valid identifier (letters, digits and underscores, starting with a letter)", raw),
		}
	}
	return GuardResult{Allowed: true}
}

// Derive computes every variant of raw.
func Derive(raw string) (Name, error) {
	if err := CanDerive(raw).Error(); err != nil {
		return Name{}, err
	}

	plural := pascalCase(Pluralize(raw))
	return Name{
		Raw:         raw,
		Studly:      Capitalize(raw),
		Lower:       strings.ToLower(raw),
		Plural:      plural,
		PluralLower: strings.ToLower(plural),
	}, nil
}

// Capitalize returns the string with the first letter uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pascalCase upper-cases the first letter of every underscore-separated part
// and drops the underscores: "order_items" -> "OrderItems".
func pascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		parts[i] = Capitalize(part)
	}
	return strings.Join(parts, "")
}

// Pluralize returns the English plural of s. Only the last word is inflected,
// so "orderItem" becomes "orderItems" and "order_item" becomes "order_items".
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	head, tail := splitLastWord(s)
	return head + pluralizeWord(tail)
}

// splitLastWord splits s before its final word boundary (an underscore or a
// lower-to-upper case change).
func splitLastWord(s string) (string, string) {
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		if runes[i-1] == '_' {
			return string(runes[:i]), string(runes[i:])
		}
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			return string(runes[:i]), string(runes[i:])
		}
	}
	return "", s
}

// pluralizeWord inflects a single word. The local tables cover words the
// inflection rule set gets wrong; everything else follows its English rules.
func pluralizeWord(word string) string {
	lower := strings.ToLower(word)

	if uncountable[lower] {
		return word
	}
	if plural, ok := irregular[lower]; ok {
		return matchCase(word, plural)
	}
	return inflection.Plural(word)
}

// matchCase carries the capitalization of the first letter of word over to plural.
func matchCase(word, plural string) string {
	if unicode.IsUpper([]rune(word)[0]) {
		return Capitalize(plural)
	}
	return plural
}

var irregular = map[string]string{
	"foot":   "feet",
	"tooth":  "teeth",
	"goose":  "geese",
	"hero":   "heroes",
	"potato": "potatoes",
	"echo":   "echoes",
	"human":  "humans",
}

var uncountable = map[string]bool{
	"news": true,
	"deer": true,
}
