package core

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_InsertionOrder(t *testing.T) {
	args := NewArgs().
		Set("symbol", "BNBBTC").
		Set("side", "BUY").
		Set("quantity", "1")

	assert.Equal(t, []string{"symbol", "side", "quantity"}, args.Keys())
	assert.Equal(t, 3, args.Len())

	args.Set("side", "SELL")
	assert.Equal(t, []string{"symbol", "side", "quantity"}, args.Keys())
	v, ok := args.Get("side")
	require.True(t, ok)
	assert.Equal(t, "SELL", v)
}

func TestArgs_Delete(t *testing.T) {
	args := NewArgs().Set("a", 1).Set("b", 2).Set("c", 3)

	args.Delete("b")
	args.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, args.Keys())
	assert.False(t, args.Has("b"))
	assert.Equal(t, "a=1&c=3", args.Encode())
}

func TestArgs_KeysIsCopy(t *testing.T) {
	args := NewArgs().Set("a", 1)
	keys := args.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"a"}, args.Keys())
}

func TestArgs_Clone(t *testing.T) {
	args := NewArgs().Set("symbol", "BNBBTC")
	clone := args.Clone()
	clone.Set("limit", 10).Delete("symbol")

	assert.Equal(t, []string{"symbol"}, args.Keys())
	assert.Equal(t, []string{"limit"}, clone.Keys())
}

func TestArgs_All(t *testing.T) {
	args := NewArgs().Set("x", 1).Set("y", 2).Set("z", 3)

	var keys []string
	for k := range args.All() {
		keys = append(keys, k)
		if k == "y" {
			break
		}
	}
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestArgs_Encode(t *testing.T) {
	args := NewArgs().
		Set("symbol", "BNBBTC").
		Set("orderId", int64(42)).
		Set("price", *apd.New(1, -1)).
		Set("note", "a b&c=d")

	assert.Equal(t, "symbol=BNBBTC&orderId=42&price=0.1&note=a+b%26c%3Dd", args.Encode())
	assert.Empty(t, NewArgs().Encode())
}

func TestArgs_StringMap(t *testing.T) {
	args := NewArgs().Set("symbol", "BNBBTC").Set("limit", 50)
	assert.Equal(t, map[string]string{"symbol": "BNBBTC", "limit": "50"}, args.StringMap())
}

func TestArgs_ZeroValue(t *testing.T) {
	var args Args
	args.Set("symbol", "BNBBTC")
	assert.Equal(t, "symbol=BNBBTC", args.Encode())
}

type nilStringer struct{ name string }

func (s *nilStringer) String() string { return s.name }

func TestArgs_EncodeNilStringer(t *testing.T) {
	args := NewArgs().Set("symbol", "BNBBTC").Set("note", (*nilStringer)(nil))
	assert.Equal(t, "symbol=BNBBTC&note=", args.Encode())
}

func TestFormatValue(t *testing.T) {
	var nilDec *apd.Decimal

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "BNBBTC", "BNBBTC"},
		{"int", 50, "50"},
		{"int32", int32(-7), "-7"},
		{"int64", int64(1700000000000), "1700000000000"},
		{"uint", uint(3), "3"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"float64", 0.00000123, "0.00000123"},
		{"large float64", 1e21, "1000000000000000000000"},
		{"float32", float32(0.5), "0.5"},
		{"bool", true, "true"},
		{"apd", *apd.New(1, -1), "0.1"},
		{"apd exponent", *apd.New(15, 2), "1500"},
		{"apd pointer", apd.New(25, -3), "0.025"},
		{"nil apd pointer", nilDec, ""},
		{"shopspring", decimal.RequireFromString("0.00010000"), "0.0001"},
		{"stringer", SideSell, "SELL"},
		{"nil stringer", (*nilStringer)(nil), ""},
		{"fallback", []int{1, 2}, "[1 2]"},
		{"nan", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}
