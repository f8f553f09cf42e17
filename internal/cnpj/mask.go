package cnpj

import (
	"strings"
	"unicode"

	"cnpj-toolkit/internal/domain"
)

// progressive segment widths and the separator placed before each one.
var (
	segmentWidths     = [...]int{2, 3, 3, 4, 2}
	segmentSeparators = [...]string{"", ".", ".", "/", "-"}
)

// ApplyMask lays pure out over domain.MaskTemplate. Slots past the end of
// pure stay empty while the literal separators are kept.
func ApplyMask(pure string) string {
	src := []rune(pure)

	var b strings.Builder
	b.Grow(len(domain.MaskTemplate))

	i := 0
	for _, c := range domain.MaskTemplate {
		if c != '#' {
			b.WriteRune(c)
			continue
		}
		if i < len(src) {
			b.WriteRune(src[i])
		}
		i++
	}
	return b.String()
}

// ApplyProgressiveMask formats partially typed input. A separator is only
// written in front of a segment that has at least one character, so the
// mask grows with the input.
func ApplyProgressiveMask(partial string) string {
	src := []rune(partial)
	if len(src) > domain.Length {
		src = src[:domain.Length]
	}

	var b strings.Builder
	pos := 0
	for i, width := range segmentWidths {
		if pos >= len(src) {
			break
		}
		end := min(pos+width, len(src))
		b.WriteString(segmentSeparators[i])
		b.WriteString(string(src[pos:end]))
		pos = end
	}
	return b.String()
}

// StripMask removes mask punctuation and whitespace, including Unicode
// spaces such as NBSP pasted from web pages.
func StripMask(s string) string {
	return strings.Map(func(r rune) rune {
		if isMaskRune(r) {
			return -1
		}
		return r
	}, s)
}

func isMaskRune(r rune) bool {
	switch r {
	case '.', '-', '/', '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}
