package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{150050, "1500.50"},
		{-12345, "-123.45"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.cents), "cents %d", tc.cents)
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1500.50", FormatBRL(150050))
}

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"150", 15000},
		{"150.5", 15050},
		{"150.50", 15050},
		{"0.05", 5},
		{".50", 50},
		{"  42  ", 4200},
		{"-10.25", -1025},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "10.999", "10,50", "-", ".", "-."} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParse_RoundTripsFormat(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 123456789} {
		got, err := Parse(Format(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}
