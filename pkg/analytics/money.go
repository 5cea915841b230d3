package analytics

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount decoded leniently from the API. Valid is false
// when the field was absent, null or not a number.
type Money struct {
	Amount decimal.Decimal
	Valid  bool
}

func NewMoney(v float64) Money {
	return Money{Amount: decimal.NewFromFloat(v), Valid: true}
}

func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Amount: d, Valid: true}
}

// OrZero returns the amount, or zero when it is missing or negative.
func (m Money) OrZero() decimal.Decimal {
	if !m.Valid || m.Amount.IsNegative() {
		return decimal.Zero
	}
	return m.Amount
}

// Or returns m when it is present and fallback otherwise.
func (m Money) Or(fallback Money) Money {
	if m.Valid {
		return m
	}
	return fallback
}

func (m Money) String() string {
	if !m.Valid {
		return ""
	}
	return m.Amount.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(m.Amount.String()), nil
}

// UnmarshalJSON never fails: anything that is not a usable number leaves the
// amount invalid.
func (m *Money) UnmarshalJSON(b []byte) error {
	*m = Money{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	switch b[0] {
	case '{', '[', 't', 'f':
		return nil
	case '"':
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
	default:
		s = string(b)
	}

	if d, ok := ParseAmount(s); ok {
		m.Amount = d
		m.Valid = true
	}
	return nil
}

// ParseAmount accepts user-formatted amounts such as "20,000", "INR 1,200.50"
// or "₹ -300". Only digits, '.' and a leading '-' are kept.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	// plain JSON numbers, including exponents
	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}

	s = strings.ReplaceAll(s, ",", "")
	var b strings.Builder
	b.Grow(len(s))
	neg := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-':
			// only a single sign before the digits
			if neg || b.Len() > 0 {
				return decimal.Zero, false
			}
			neg = true
		}
	}

	clean := b.String()
	if clean == "" {
		return decimal.Zero, false
	}
	if neg {
		clean = "-" + clean
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// SumMoney adds amounts, treating missing and negative values as zero.
func SumMoney(values []Money) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.OrZero())
	}
	return total
}
