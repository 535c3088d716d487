package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Money is a decimal amount. The API serializes DECIMAL columns either as a
// JSON number or as a quoted string ("99.90"); both decode.
type Money float64

func (m Money) Float64() float64 {
	return float64(m)
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid money value %s: %w", data, err)
		}
		if s == "" {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid money value %q: %w", s, err)
		}
		*m = Money(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid money value %s: %w", data, err)
	}
	*m = Money(v)
	return nil
}
