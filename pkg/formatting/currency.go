package formatting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCurrency is returned when a value cannot be read as a BRL amount.
var ErrInvalidCurrency = errors.New("invalid currency value")

// ParseBRL reads a Brazilian-formatted currency string into a decimal number
// of reais. The "R$" prefix and whitespace are ignored, dots are treated as
// grouping separators, and a comma introduces the decimal part
// ("R$ 1.999,99" → 1999.99, "2.000,00" → 2000, "8000" → 8000).
func ParseBRL(value string) (float64, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	if s == "" {
		return 0, ErrInvalidCurrency
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCurrency, value)
	}
	return amount, nil
}

// FormatBRL renders a decimal number of reais in Brazilian currency format
// with grouping dots and a comma decimal separator (6800 → "R$ 6.800,00").
func FormatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(whole, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, grouped.String(), decPart)
}
