package pincode

import "unicode/utf8"

// Length is the number of digits in an Indian pincode.
const Length = 6

// Validate reports whether s is exactly six ASCII digits.
func Validate(s string) error {
	if utf8.RuneCountInString(s) != Length {
		return &ValidationError{Input: s}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return &ValidationError{Input: s}
		}
	}
	return nil
}
