package validate

import (
	"strings"
	"unicode"

	"github.com/ShiraazMoollatjie/goluhn"
)

const minMobileDigits = 9

// IsLuhn reports whether s is a Luhn-valid account or card identifier.
func IsLuhn(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}

// IsCardShaped reports whether s looks like a card or account number:
// digits and spaces only, 13 to 19 digits. Card-shaped input must pass
// the Luhn check even on the mobile money gateway.
func IsCardShaped(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ':
		default:
			return false
		}
	}
	return digits >= 13 && digits <= 19
}

// IsMobile reports whether s carries enough digits to pass as a mobile
// money destination.
func IsMobile(s string) bool {
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= minMobileDigits
}
