package module

import (
	"fmt"
	"strings"
)

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
	return fmt.Errorf("%w: %s", ErrInvalidType, r.Reason)
}

// CanUseType evaluates whether raw names a module type.
// Rules:
// - Type must be exactly "api" or "web" (no case folding, no default)
func CanUseType(raw string) GuardResult {
	for _, t := range Types() {
		if raw == string(t) {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("%q is not a module type, use either %s", raw, quotedTypes()),
	}
}

// ParseType converts raw into a Type, failing with ErrInvalidType.
func ParseType(raw string) (Type, error) {
	if err := CanUseType(raw).Error(); err != nil {
		return "", err
	}
	return Type(raw), nil
}

func quotedTypes() string {
	quoted := make([]string, 0, len(Types()))
	for _, t := range Types() {
		quoted = append(quoted, fmt.Sprintf("%q", t))
	}
	return strings.Join(quoted, " or ")
}
