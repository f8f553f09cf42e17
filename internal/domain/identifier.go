package domain

import (
	"fmt"
	"strings"
)

const (
	// Length is the size of a pure identifier.
	Length = 14
	// BodyLength is the size of the generated part preceding the check pair.
	BodyLength = 12
	// MaskTemplate is the display layout; each '#' takes one pure character.
	MaskTemplate = "##.###.###/####-##"
)

// Mode selects the alphabet used to draw identifier bodies.
type Mode string

const (
	ModeAlphanumeric Mode = "alphanumeric"
	ModeNumeric      Mode = "numeric"
)

// ParseMode resolves a mode name. The empty string selects ModeAlphanumeric.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeAlphanumeric):
		return ModeAlphanumeric, nil
	case string(ModeNumeric):
		return ModeNumeric, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Identifier is a generated CNPJ in both its pure and masked forms.
type Identifier struct {
	Pure   string
	Masked string
}

// ValidationResult is the outcome of validating user input.
// Pure holds the normalized input even when Valid is false.
type ValidationResult struct {
	Pure  string
	Valid bool
}
