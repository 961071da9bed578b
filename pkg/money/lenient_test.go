package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenient_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{"number", `12.50`, "12.5", true},
		{"numeric string", `"7.25"`, "7.25", true},
		{"padded string", `" 100 "`, "100", true},
		{"null", `null`, "0", false},
		{"empty string", `""`, "0", false},
		{"garbage", `"abc"`, "0", false},
		{"bool", `true`, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Amount Lenient `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"amount":`+tt.input+`}`), &v))
			assert.Equal(t, tt.want, v.Amount.String())
			assert.Equal(t, tt.valid, v.Amount.Valid)
		})
	}
}

func TestLenient_MissingFieldIsZero(t *testing.T) {
	var v struct {
		Amount Lenient `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))

	assert.True(t, v.Amount.IsZero())
	assert.False(t, v.Amount.Valid)
}

func TestSum_IsExact(t *testing.T) {
	total := Sum(
		decimal.RequireFromString("12.50"),
		decimal.RequireFromString("7.25"),
		decimal.RequireFromString("100.00"),
	)

	assert.True(t, total.Equal(decimal.RequireFromString("119.75")))
	assert.True(t, Sum().IsZero())
}

func TestSum_NoFloatDrift(t *testing.T) {
	values := make([]decimal.Decimal, 10)
	for i := range values {
		values[i] = decimal.RequireFromString("0.1")
	}

	assert.Equal(t, "1", Sum(values...).String())
}
