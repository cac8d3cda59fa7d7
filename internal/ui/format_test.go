package ui

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5280.42", "$5,280.42"},
		{"12750.89", "$12,750.89"},
		{"-450.30", "-$450.30"},
		{"0", "$0.00"},
		{"20", "$20.00"},
		{"1000000.5", "$1,000,000.50"},
	}
	for _, tc := range cases {
		got := formatAmount(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "formatAmount(%s)", tc.in)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, time.May, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "May 1, 2025 10:30 AM", formatTimestamp(ts))
}

func TestAccountLabel(t *testing.T) {
	assert.Equal(t, "Checking ****1234", accountLabel("checking", "****1234"))
	assert.Equal(t, "Savings ****5678", accountLabel("savings", "****5678"))
}

func TestParseAmount(t *testing.T) {
	d, err := parseAmount(" 42.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("42.50")))

	for _, bad := range []string{"", "abc", "-5", "0", "0.00"} {
		_, err := parseAmount(bad)
		assert.Error(t, err, "parseAmount(%q)", bad)
	}
}
