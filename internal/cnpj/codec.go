package cnpj

import (
	"fmt"

	"cnpj-toolkit/internal/domain"
)

const (
	// Alphanumeric is the body alphabet of the 2026 format.
	Alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Digits is the body alphabet of the legacy numeric format.
	Digits = "0123456789"
)

// ValueOf returns the checksum weight of c. Lower-case letters are accepted.
func ValueOf(c rune) (int, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCharacter, c)
	}
	return int(c - '0'), nil
}

// Values converts every character of s with ValueOf.
func Values(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, c := range s {
		v, err := ValueOf(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
