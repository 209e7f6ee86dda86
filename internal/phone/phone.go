package phone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DigitCount is the number of digits in a dialable number
const DigitCount = 10

var (
	// ErrInvalidLength is returned by Format for anything but DigitCount digits
	ErrInvalidLength = errors.New("invalid phone number length")

	// ErrInvalidDigit is returned by Format for values outside 0..9
	ErrInvalidDigit = errors.New("invalid phone number digit")
)

// keypad groups in key order
var keypad = []struct {
	letters string
	digit   int
}{
	{"abc", 2},
	{"def", 3},
	{"ghi", 4},
	{"jkl", 5},
	{"mno", 6},
	{"pqrs", 7},
	{"tuv", 8},
	{"wxyz", 9},
}

// Convert maps a token to a keypad digit. A token that parses as a digit is
// returned as is; otherwise it converts to the key of the first letter group
// containing it. The bool is false when the token matches nothing.
func Convert(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil && n >= 0 && n < 10 {
		return n, true
	}

	if token == "" {
		return 0, false
	}

	lower := strings.ToLower(token)
	for _, group := range keypad {
		if strings.Contains(group.letters, lower) {
			return group.digit, true
		}
	}
	return 0, false
}

// Format renders exactly DigitCount digits as NNN-NNN-NNNN
func Format(digits []int) (string, error) {
	if len(digits) != DigitCount {
		return "", fmt.Errorf("%w: got %d digits, want %d", ErrInvalidLength, len(digits), DigitCount)
	}

	var b strings.Builder
	for i, d := range digits {
		if d < 0 || d > 9 {
			return "", fmt.Errorf("%w: %d at position %d", ErrInvalidDigit, d, i)
		}
		if i == 3 || i == 6 {
			b.WriteByte('-')
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String(), nil
}

// Parse is the inverse of Format. It accepts only the NNN-NNN-NNNN shape.
func Parse(number string) ([]int, error) {
	if len(number) != DigitCount+2 || number[3] != '-' || number[7] != '-' {
		return nil, fmt.Errorf("%w: %q is not NNN-NNN-NNNN", ErrInvalidLength, number)
	}

	digits := make([]int, 0, DigitCount)
	for i := 0; i < len(number); i++ {
		if i == 3 || i == 7 {
			continue
		}
		c := number[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i)
		}
		digits = append(digits, int(c-'0'))
	}
	return digits, nil
}
