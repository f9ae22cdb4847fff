package charset

import (
	"errors"
	"testing"
)

func toSet(alphabet []rune) map[rune]bool {
	set := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		set[r] = true
	}
	return set
}

func TestBuild_LettersOnly(t *testing.T) {
	spec := Spec{Length: 8, Uppercase: true, Lowercase: true}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(alphabet) != 52 {
		t.Errorf("expected 52 letters, got %d", len(alphabet))
	}

	set := toSet(alphabet)
	for _, r := range alphabet {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')) {
			t.Errorf("unexpected character %q in letters-only alphabet", r)
		}
	}
	if !set['A'] || !set['z'] {
		t.Error("expected both case ranges present")
	}
}

func TestBuild_ExcludeWins(t *testing.T) {
	spec := Spec{Length: 8, Lowercase: true, Exclude: "ab"}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := toSet(alphabet)
	if set['a'] || set['b'] {
		t.Error("excluded characters survived")
	}
	if !set['c'] {
		t.Error("expected 'c' to remain")
	}
}

func TestBuild_ExcludeWinsOverInclude(t *testing.T) {
	spec := Spec{Length: 8, Lowercase: true, Include: "ab", Exclude: "a"}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := toSet(alphabet)
	if set['a'] {
		t.Error("'a' was both included and excluded; exclusion must win")
	}
	if !set['b'] {
		t.Error("included 'b' missing")
	}
}

func TestBuild_NoAmbiguous(t *testing.T) {
	spec := DefaultSpec()
	spec.NoAmbiguous = true

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := toSet(alphabet)
	for _, r := range AmbiguousChars {
		if set[r] {
			t.Errorf("ambiguous character %q present in alphabet", r)
		}
	}
}

func TestBuild_IncludeOutsideCategories(t *testing.T) {
	// All categories disabled, only a manual include: the usable-category
	// check must not reject explicitly supplied characters.
	spec := Spec{Length: 2, Include: "x"}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(alphabet) != 1 || alphabet[0] != 'x' {
		t.Errorf("expected alphabet {x}, got %q", string(alphabet))
	}
}

func TestBuild_EmptyAlphabet(t *testing.T) {
	spec := Spec{Length: 5}

	_, err := Build(spec)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestBuild_PartiallyExcludedCategorySurvives(t *testing.T) {
	// One uppercase survivor is enough to satisfy the category check.
	spec := Spec{Length: 8, Digits: true, Uppercase: true, Exclude: DigitChars + UppercaseChars[1:]}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alphabet) != 1 || alphabet[0] != 'A' {
		t.Errorf("expected alphabet {A}, got %q", string(alphabet))
	}
}

func TestBuild_NoUsableCategorySurvivors(t *testing.T) {
	// The symbol category's class is "non-alphanumeric": a custom symbol
	// pool of letters leaves the set non-empty but satisfies no enabled
	// category, which is exactly what the check exists to catch.
	spec := Spec{Length: 8, Symbols: true, CustomSymbols: "abc"}

	_, err := Build(spec)
	if !errors.Is(err, ErrNoUsableCategory) {
		t.Errorf("expected ErrNoUsableCategory, got %v", err)
	}

	// A manual include is always accepted as-is.
	spec = Spec{Length: 8, Symbols: true, Include: "7", Exclude: DefaultSymbols}
	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("manual include must bypass the category check: %v", err)
	}
	if len(alphabet) != 1 || alphabet[0] != '7' {
		t.Errorf("expected alphabet {7}, got %q", string(alphabet))
	}
}

func TestBuild_CategoryFullyExcluded(t *testing.T) {
	spec := Spec{Length: 8, Lowercase: true, Exclude: LowercaseChars}

	_, err := Build(spec)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestBuild_LengthOneSkipsCategoryCheck(t *testing.T) {
	// length == 1 passwords skip the usable-category validation entirely.
	spec := Spec{Length: 1, Uppercase: true, Exclude: UppercaseChars[:25]}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alphabet) != 1 {
		t.Errorf("expected single-character alphabet, got %d", len(alphabet))
	}
}

func TestBuild_CustomSymbolsReplaceDefaults(t *testing.T) {
	spec := Spec{Length: 8, Symbols: true, CustomSymbols: "@#"}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := toSet(alphabet)
	if !set['@'] || !set['#'] {
		t.Error("custom symbols missing from alphabet")
	}
	if set['!'] || set['?'] {
		t.Error("default symbols should be replaced, not merged")
	}
	if len(alphabet) != 2 {
		t.Errorf("expected alphabet of 2 custom symbols, got %d", len(alphabet))
	}
}

func TestBuild_Deduplicates(t *testing.T) {
	spec := Spec{Length: 8, Lowercase: true, Include: "aaabbb"}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(alphabet) != 26 {
		t.Errorf("expected 26 unique characters, got %d", len(alphabet))
	}
}

func TestBuild_EqualSpecsSetEqual(t *testing.T) {
	spec := DefaultSpec()
	spec.NoAmbiguous = true
	spec.Exclude = "xyz"
	spec.Include = "§"

	first, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("alphabet sizes differ: %d vs %d", len(first), len(second))
	}

	set := toSet(first)
	for _, r := range second {
		if !set[r] {
			t.Errorf("second build contains %q missing from first", r)
		}
	}
}

func TestBuild_AmbiguousStripsIncluded(t *testing.T) {
	// Ambiguous removal runs after includes, so included ambiguous
	// characters are stripped too.
	spec := Spec{Length: 8, Lowercase: true, Include: "0O", NoAmbiguous: true}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := toSet(alphabet)
	if set['0'] || set['O'] {
		t.Error("ambiguous characters survived despite NoAmbiguous")
	}
}

func TestDefaultSpec(t *testing.T) {
	spec := DefaultSpec()

	if spec.Length != 12 {
		t.Errorf("expected default length 12, got %d", spec.Length)
	}
	if !spec.Uppercase || !spec.Lowercase || !spec.Digits || !spec.Symbols {
		t.Error("expected all categories enabled by default")
	}

	alphabet, err := Build(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 26+26+10 alphanumerics plus 26 default symbols, minus the overlap of
	// '0'..'9' with nothing — all pools are disjoint.
	if len(alphabet) != 88 {
		t.Errorf("expected 88 characters in the full alphabet, got %d", len(alphabet))
	}
}
