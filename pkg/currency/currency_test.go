package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹ 0.00"},
		{"5", "₹ 5.00"},
		{"100", "₹ 100.00"},
		{"1000", "₹ 1,000.00"},
		{"295", "₹ 295.00"},
		{"45.5", "₹ 45.50"},
		{"1234567.8", "₹ 1,234,567.80"},
		{"-45.5", "₹ -45.50"},
		{"-1234.5", "₹ -1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}
