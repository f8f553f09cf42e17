package cnpj

import (
	"regexp"
	"strings"

	"cnpj-toolkit/internal/domain"
)

var (
	alphanumericFormat = regexp.MustCompile(`^[0-9A-Z]{12}[0-9]{2}$`)
	numericFormat      = regexp.MustCompile(`^[0-9]{14}$`)
)

// Validate normalizes raw input and checks structure and check digits.
// It never fails: malformed input yields Valid false together with the
// best-effort normalized value.
func Validate(raw string) domain.ValidationResult {
	upper := strings.ToUpper(raw)
	pure := StripMask(upper)
	invalid := domain.ValidationResult{Pure: pure}

	if !acceptedInput(upper) {
		return invalid
	}
	if len(pure) != domain.Length {
		return invalid
	}
	if !alphanumericFormat.MatchString(pure) {
		return invalid
	}
	if repeated(pure) {
		return invalid
	}

	first, second, err := CheckPair(pure[:domain.BodyLength])
	if err != nil {
		return invalid
	}
	if int(pure[12]-'0') != first || int(pure[13]-'0') != second {
		return invalid
	}

	return domain.ValidationResult{Pure: pure, Valid: true}
}

// acceptedInput reports whether s holds only 0-9, A-Z and mask runes.
func acceptedInput(s string) bool {
	for _, r := range s {
		if ('0' <= r && r <= '9') || ('A' <= r && r <= 'Z') || isMaskRune(r) {
			continue
		}
		return false
	}
	return true
}

// IsValid reports whether raw is a valid identifier.
func IsValid(raw string) bool {
	return Validate(raw).Valid
}

// repeated reports whether s is a single character repeated.
func repeated(s string) bool {
	if s == "" {
		return false
	}
	return strings.Count(s, s[:1]) == len(s)
}

func formatFor(mode domain.Mode) *regexp.Regexp {
	if mode == domain.ModeNumeric {
		return numericFormat
	}
	return alphanumericFormat
}
