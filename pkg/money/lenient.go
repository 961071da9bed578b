package money

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Lenient is a decimal that accepts JSON numbers, numeric strings, null and
// garbage alike. Anything that does not parse becomes zero and Valid is false.
type Lenient struct {
	decimal.Decimal
	Valid bool
}

func (l *Lenient) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = Lenient{}
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			*l = Lenient{}
			return nil
		}
	} else {
		raw = string(data)
	}

	*l = Parse(raw)
	return nil
}

func (l Lenient) MarshalJSON() ([]byte, error) {
	return l.Decimal.MarshalJSON()
}

// Parse converts s to a decimal, yielding zero for empty or malformed input.
func Parse(s string) Lenient {
	s = strings.TrimSpace(s)
	if s == "" {
		return Lenient{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Lenient{}
	}
	return Lenient{Decimal: d, Valid: true}
}

// New wraps a decimal as a valid Lenient value.
func New(d decimal.Decimal) Lenient {
	return Lenient{Decimal: d, Valid: true}
}

// FromString parses s and panics on failure. Intended for literals.
func FromString(s string) Lenient {
	return New(decimal.RequireFromString(s))
}

// Sum adds the given decimals.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
