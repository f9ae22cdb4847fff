// Package charset turns a declarative password constraint spec into the
// final alphabet characters are drawn from.
package charset

import "errors"

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	DefaultSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are easily confused glyphs removable as a block.
	AmbiguousChars = "0Ol1I"
)

var (
	ErrEmptyAlphabet    = errors.New("no characters available for password generation, check your exclusion rules")
	ErrNoUsableCategory = errors.New("no valid characters available for password generation")
)

// Spec describes the desired password shape and character rules. It is
// built once per invocation and never mutated.
type Spec struct {
	Length        int
	Uppercase     bool
	Lowercase     bool
	Digits        bool
	Symbols       bool
	CustomSymbols string // replaces DefaultSymbols when Symbols is enabled
	Exclude       string // always removed, wins over Include
	Include       string // always added, independent of category toggles
	NoAmbiguous   bool
}

// DefaultSpec returns a spec with all categories enabled and length 12.
func DefaultSpec() Spec {
	return Spec{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Build resolves the spec into the final deduplicated alphabet.
//
// The order of operations is policy, not an accident: category pools and
// manual includes are unioned first, the ambiguous set is stripped next,
// and explicit exclusions are stripped last so that exclusion always wins
// over inclusion. The order of runes in the returned slice is unspecified;
// callers must not depend on it.
func Build(spec Spec) ([]rune, error) {
	set := make(map[rune]struct{})

	add := func(chars string) {
		for _, r := range chars {
			set[r] = struct{}{}
		}
	}

	if spec.Uppercase {
		add(UppercaseChars)
	}
	if spec.Lowercase {
		add(LowercaseChars)
	}
	if spec.Digits {
		add(DigitChars)
	}
	if spec.Symbols {
		symbols := spec.CustomSymbols
		if symbols == "" {
			symbols = DefaultSymbols
		}
		add(symbols)
	}

	// Manual includes are added regardless of category toggles.
	add(spec.Include)

	if spec.NoAmbiguous {
		for _, r := range AmbiguousChars {
			delete(set, r)
		}
	}

	for _, r := range spec.Exclude {
		delete(set, r)
	}

	if len(set) == 0 {
		return nil, ErrEmptyAlphabet
	}

	// For multi-character passwords, at least one enabled category must
	// have survived exclusion so the result still contains an intended
	// character class. A manual include is always accepted as-is.
	if spec.Length > 1 && spec.Include == "" {
		hasUsable := (spec.Uppercase && containsClass(set, isUppercase)) ||
			(spec.Lowercase && containsClass(set, isLowercase)) ||
			(spec.Digits && containsClass(set, isDigit)) ||
			(spec.Symbols && containsClass(set, isSymbol))
		if !hasUsable {
			return nil, ErrNoUsableCategory
		}
	}

	alphabet := make([]rune, 0, len(set))
	for r := range set {
		alphabet = append(alphabet, r)
	}

	return alphabet, nil
}

func containsClass(set map[rune]struct{}, class func(rune) bool) bool {
	for r := range set {
		if class(r) {
			return true
		}
	}
	return false
}

func isUppercase(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLowercase(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool     { return r >= '0' && r <= '9' }
func isSymbol(r rune) bool    { return !isUppercase(r) && !isLowercase(r) && !isDigit(r) }
