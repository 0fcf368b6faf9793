// Package money converts between user-facing decimal amounts and the int64
// cents the rest of the program works with. Balances never touch floats.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"caixa/internal/constants"
)

// Format renders cents as a plain decimal string, e.g. 150050 -> "1500.50".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/constants.CentsPerUnit, cents%constants.CentsPerUnit)
}

// FormatBRL renders cents with the currency prefix used on statements.
func FormatBRL(cents int64) string {
	return "R$ " + Format(cents)
}

// Parse reads amounts like "150", "150.5" or "150.50" into cents. More than
// two decimal digits is rejected rather than silently truncated.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", s)
	}
	if parts[0] == "" && (len(parts) < 2 || parts[1] == "") {
		return 0, fmt.Errorf("invalid amount: no digits")
	}

	var units int64
	if parts[0] != "" {
		var err error
		units, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %s", s)
		}
	}

	var cents int64
	if len(parts) == 2 && parts[1] != "" {
		frac := parts[1]
		if len(frac) > 2 {
			return 0, fmt.Errorf("amounts have at most two decimal digits: %s", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		var err error
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %s", s)
		}
	}

	total := units*constants.CentsPerUnit + cents
	if neg {
		total = -total
	}
	return total, nil
}
