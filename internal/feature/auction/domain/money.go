package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount indicates a monetary string that is not a positive
// decimal with at most two fractional digits.
var ErrInvalidAmount = errors.New("amount must be a positive decimal with at most two fractional digits")

// ParseAmount converts a decimal string such as "10.01" into cents.
// Amounts are held as int64 cents throughout so that price comparisons are
// exact; the strict bid floor must never fall to floating-point rounding.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, ErrInvalidAmount
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if fracPart == "" {
			return 0, ErrInvalidAmount
		}
	}
	if intPart == "" || len(fracPart) > 2 {
		return 0, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var cents int64
	switch len(fracPart) {
	case 0:
		cents = 0
	case 1:
		d, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		cents = d * 10
	case 2:
		d, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		cents = d
	}

	// strconv accepts signs and "1_0" separators; none are valid here.
	if strings.ContainsAny(intPart+fracPart, "+-_") {
		return 0, ErrInvalidAmount
	}

	const maxUnits = (1<<63 - 1) / 100
	if units > maxUnits {
		return 0, ErrInvalidAmount
	}
	total := units*100 + cents
	if total <= 0 {
		return 0, ErrInvalidAmount
	}
	return total, nil
}

// FormatAmount renders cents as a decimal string with two fractional
// digits, e.g. 1001 -> "10.01".
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
